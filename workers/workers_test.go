package workers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/clientsdb/clients"
)

func TestInvertString(t *testing.T) {
	biff.AssertEqual(InvertString("Jan Kowalski"), "jAN kOWALSKI")
	biff.AssertEqual(InvertString("Łódź 12/3"), "łÓDŹ 12/3")
	biff.AssertEqual(InvertString(""), "")
}

func TestInvertCase(t *testing.T) {

	fields := clients.Fields{
		FirstName: "Anna",
		Email:     "A@b.PL",
		Business:  true,
		Image:     "data:image/jpeg;base64,AbC",
	}

	inverted := InvertCase(fields)

	biff.AssertEqual(inverted.FirstName, "aNNA")
	biff.AssertEqual(inverted.Email, "a@B.pl")
	biff.AssertEqual(inverted.Business, true)
	biff.AssertEqual(inverted.Image, "data:image/jpeg;base64,AbC")

	// input is not modified
	biff.AssertEqual(fields.FirstName, "Anna")

	biff.AssertEqual(InvertCase(inverted), fields)
}

func TestLetterSum(t *testing.T) {
	biff.AssertEqual(LetterSum("a"), 1)
	biff.AssertEqual(LetterSum("ą"), 2)
	biff.AssertEqual(LetterSum("ż"), 32)
	biff.AssertEqual(LetterSum("A"), 31)
	biff.AssertEqual(LetterSum("Ż"), 62)
	biff.AssertEqual(LetterSum("qvx 123 @"), 0)
	biff.AssertEqual(LetterSum("ab"), 1+3)
}

func TestTintFromSum(t *testing.T) {
	biff.AssertEqual(TintFromSum(0), RGB{R: 0, G: 255, B: 199})
	biff.AssertEqual(TintFromSum(100), RGB{R: 100, G: 155, B: 199})
	biff.AssertEqual(TintFromSum(250), RGB{R: 250, G: 5, B: 199})
	biff.AssertEqual(TintFromSum(251), RGB{R: 251, G: 4, B: 99})
	biff.AssertEqual(TintFromSum(255), RGB{R: 0, G: 255, B: 199})
}

func TestTint(t *testing.T) {

	fields := clients.Fields{
		FirstName: "ab",
		LastName:  "A",
		Business:  true,
		Image:     "abcdef",
	}

	biff.AssertEqual(Tint(fields), TintFromSum(1+3+31))
	biff.AssertEqual(Tint(fields).String(), "rgb(35, 220, 199)")
	biff.AssertEqual(Tint(clients.Fields{}), RGB{R: 0, G: 255, B: 199})
}

func pngDataURL(t *testing.T, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, c)
		}
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestTintImage(t *testing.T) {

	src := pngDataURL(t, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	tinted, err := TintImage(src, RGB{R: 0, G: 0, B: 0})
	biff.AssertNil(err)
	biff.AssertTrue(strings.HasPrefix(tinted, "data:image/jpeg;base64,"))

	img, err := DecodeDataURL(tinted)
	biff.AssertNil(err)
	biff.AssertEqual(img.Bounds(), image.Rect(0, 0, 4, 4))

	// white under half black is mid grey, give room for jpeg artifacts
	r, g, b, _ := img.At(1, 1).RGBA()
	for _, channel := range []uint32{r >> 8, g >> 8, b >> 8} {
		biff.AssertTrue(channel > 100 && channel < 156)
	}
}

func TestTintImage_Invalid(t *testing.T) {

	_, err := TintImage("", RGB{})
	biff.AssertTrue(errors.Is(err, ErrInvalidDataURL))

	_, err = TintImage("data:text/plain;base64,AAAA", RGB{})
	biff.AssertTrue(errors.Is(err, ErrInvalidDataURL))

	_, err = TintImage("data:image/png;base64,@@@", RGB{})
	biff.AssertTrue(errors.Is(err, ErrInvalidDataURL))

	_, err = TintImage("data:image/png;base64,AAAA", RGB{})
	biff.AssertNotNil(err)
}
