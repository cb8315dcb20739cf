// Package image1bit provides a 1-bit image format for page-addressed OLED controllers.
//
// Memory layout for a 4x16 image (two pages):
//
//	          x=0      x=1      x=2      x=3
//	page 0   Pix[0]   Pix[1]   Pix[2]   Pix[3]    rows 0-7
//	page 1   Pix[4]   Pix[5]   Pix[6]   Pix[7]    rows 8-15
//
// Inside a byte, bit 0 is the top row of the page and bit 7 the bottom row.
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
//	img.SetBit(10, 20, image1bit.On)
//	println(img.BitAt(10, 20)) // On
//
//	// Works with the standard library drawing helpers.
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
