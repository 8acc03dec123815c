// Package assets resolves piece face identifiers to images. Faces are read
// from PNG files in a resource directory; any face that cannot be read is
// replaced by a generated disc so the board always has something to draw.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // face files are PNG
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFaceSize is the edge length of generated faces in pixels.
const DefaultFaceSize = 64

// Disc palettes for generated faces.
var (
	whiteDisc = color.RGBA{R: 236, G: 232, B: 220, A: 255}
	blackDisc = color.RGBA{R: 34, G: 34, B: 38, A: 255}
	whiteInk  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	blackInk  = color.RGBA{R: 220, G: 220, B: 210, A: 255}
)

// Catalog caches face images by identifier. It is not safe for concurrent use.
type Catalog struct {
	dir    string
	size   int
	log    logrus.FieldLogger
	images map[board.FaceID]image.Image
	// Generated records which faces fell back to a generated image.
	Generated map[board.FaceID]bool
}

// NewCatalog creates a catalog reading from dir. size controls generated
// face dimensions; non-positive values use DefaultFaceSize.
func NewCatalog(dir string, size int, log logrus.FieldLogger) *Catalog {
	if size <= 0 {
		size = DefaultFaceSize
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Catalog{
		dir:       dir,
		size:      size,
		log:       log.WithField("component", "assets"),
		images:    make(map[board.FaceID]image.Image),
		Generated: make(map[board.FaceID]bool),
	}
}

// Preload resolves every face of both default populations and reports how
// many came from disk.
func (c *Catalog) Preload(faces map[board.Color][]board.FaceID) (fromDisk int) {
	for col, ids := range faces {
		for _, id := range ids {
			c.Image(id, col)
			if !c.Generated[id] {
				fromDisk++
			}
		}
	}
	c.log.WithFields(logrus.Fields{"dir": c.dir, "from_disk": fromDisk, "generated": len(c.Generated)}).Info("faces loaded")
	return fromDisk
}

// Image returns the image for a face, loading or generating it on first use.
func (c *Catalog) Image(id board.FaceID, col board.Color) image.Image {
	if img, ok := c.images[id]; ok {
		return img
	}
	img, err := c.read(id)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.WithError(err).WithField("face", id).Warn("face unreadable, generating")
		}
		img = Generate(id, col, c.size)
		c.Generated[id] = true
	}
	c.images[id] = img
	return img
}

func (c *Catalog) read(id board.FaceID) (image.Image, error) {
	if c.dir == "" {
		return nil, fs.ErrNotExist
	}
	// Identifiers are plain file names; refuse anything that walks out of dir.
	name := filepath.Base(string(id))
	f, err := os.Open(filepath.Join(c.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Variant extracts the trailing number of a face identifier ("black7.png"
// gives 7). It returns 0 when there is none.
func Variant(id board.FaceID) int {
	s := strings.TrimSuffix(string(id), filepath.Ext(string(id)))
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0
	}
	return n
}

// Generate draws a stand-in face: a shaded disc with the variant number.
func Generate(id board.FaceID, col board.Color, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	disc, ink := whiteDisc, whiteInk
	if col == board.Black {
		disc, ink = blackDisc, blackInk
	}
	variant := Variant(id)
	// Small per-variant shade shift so neighbouring pieces read differently.
	shift := uint8(variant % 5 * 4)

	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			c := disc
			if col == board.Black {
				c.R, c.G, c.B = c.R+shift, c.G+shift, c.B+shift
			} else {
				c.R, c.G, c.B = c.R-shift, c.G-shift, c.B-shift
			}
			if d > r-2 {
				c = ink
			}
			img.SetRGBA(x, y, c)
		}
	}

	label := strconv.Itoa(variant)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
	}
	w := d.MeasureString(label).Round()
	d.Dot = fixed.P((size-w)/2, size/2+face.Ascent/2)
	d.DrawString(label)
	return img
}
