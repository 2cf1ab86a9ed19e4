// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package separate

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
)

// imageExtensions lists the file extensions enumerated from the image
// directory. Matching is exact, the way the original asset folder is
// organized (upper-case exports from the camera, lower-case web copies).
var imageExtensions = map[string]bool{
	".JPG":  true,
	".jpg":  true,
	".HEIC": true,
}

// ImagePool holds the highlight-photo references available to title
// pages and a pseudo-random source for picking among them. Injecting the
// source keeps runs reproducible under a fixed seed.
type ImagePool struct {
	refs []string
	rng  *rand.Rand
}

// LoadImagePool enumerates image files in dir and returns a pool whose
// references are refPrefix/<filename> (forward slashes, as LaTeX
// expects). Directory entries come back sorted, so the pool order is
// stable. An empty pool is an error: every title page needs an image.
func LoadImagePool(dir, refPrefix string, rng *rand.Rand) (*ImagePool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}

	var refs []string
	for _, e := range entries {
		if e.IsDir() || !imageExtensions[filepath.Ext(e.Name())] {
			continue
		}
		refs = append(refs, path.Join(filepath.ToSlash(refPrefix), e.Name()))
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}
	return &ImagePool{refs: refs, rng: rng}, nil
}

// Len returns the number of images in the pool.
func (p *ImagePool) Len() int { return len(p.refs) }

// Pick returns one image reference, drawn with replacement.
func (p *ImagePool) Pick() string {
	return p.refs[p.rng.Intn(len(p.refs))]
}
