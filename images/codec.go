package images

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Decode turns encoded image bytes (JPEG/PNG/BMP) into a PixelGrid in RGB
// channel order. The core pipeline never decodes; this is a convenience for
// collaborators such as the dataset sorter.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - *PixelGrid: The decoded RGB grid.
//   - error: Non-nil if the bytes cannot be decoded.
func Decode(data []byte) (*PixelGrid, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, errors.Wrap(err, "images: decoding image bytes")
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("images: decoded image is empty")
	}

	// OpenCV decodes to BGR; the pipeline contract is RGB.
	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(mat, &rgb, gocv.ColorBGRToRGB)

	raw, err := rgb.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "images: reading decoded pixels")
	}
	pix := make([]uint8, len(raw))
	copy(pix, raw)
	return NewPixelGrid(pix, rgb.Cols(), rgb.Rows())
}

// EncodePNG serializes a PixelGrid as PNG bytes. Counterpart of Decode for
// callers that want to persist an overlay.
func EncodePNG(grid *PixelGrid) ([]byte, error) {
	if grid == nil || grid.Empty() {
		return nil, errors.New("images: nothing to encode")
	}
	mat, err := gocv.NewMatFromBytes(grid.Height, grid.Width, gocv.MatTypeCV8UC3, grid.Pix)
	if err != nil {
		return nil, errors.Wrap(err, "images: wrapping pixels for encoding")
	}
	defer mat.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBToBGR)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, bgr)
	if err != nil {
		return nil, errors.Wrap(err, "images: encoding PNG")
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}
