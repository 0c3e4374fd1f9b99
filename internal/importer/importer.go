// Package importer bulk-loads product records from a Toliwork JSON export
// into the commerce backend: it transforms each record, resolves or
// creates its categories, re-hosts its images and saves the product.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
)

// ErrInvalidFormat rejects a document whose top-level shape is wrong; no
// record is processed in that case.
var ErrInvalidFormat = errors.New("invalid export format")

// untitledName is used when a record carries no name.
const untitledName = "Untitled"

// ProductStore persists transformed products in the commerce backend.
type ProductStore interface {
	Save(ctx context.Context, p Product) error
}

// CategoryResolver resolves a category name to its identifier, creating
// the category when it does not exist yet. Resolution must be idempotent
// by name: re-running an import never creates duplicates.
type CategoryResolver interface {
	Resolve(ctx context.Context, name string) (int, error)
}

// MediaUploader downloads the image at url and stores it in the target
// media library under title, returning the stored image's location.
type MediaUploader interface {
	Upload(ctx context.Context, url, title string) (string, error)
}

// RecordFailure describes one record whose save failed.
type RecordFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result aggregates one import run. Imported counts only records whose
// final save succeeded.
type Result struct {
	Imported int             `json:"imported"`
	Failed   []RecordFailure `json:"failed,omitempty"`
}

type Importer struct {
	store      ProductStore
	categories CategoryResolver
	media      MediaUploader
}

func New(store ProductStore, categories CategoryResolver, media MediaUploader) *Importer {
	return &Importer{store: store, categories: categories, media: media}
}

// Import decodes the export document from r and loads every product into
// the target system. Records are processed strictly one at a time: no
// lookup for record n+1 starts before record n's save completes, so
// re-running an import cannot race category creation against itself.
//
// A record whose save fails is skipped and the batch continues; the
// failure is kept in the result so the run can be audited.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Result{}, ErrInvalidFormat
	}
	if doc.Products == nil {
		return Result{}, ErrInvalidFormat
	}

	var res Result
	for _, rec := range doc.Products {
		if err := im.importRecord(ctx, rec); err != nil {
			name := rec.Name
			if name == "" {
				name = untitledName
			}
			log.Printf("importer: record %q skipped: %v", name, err)
			res.Failed = append(res.Failed, RecordFailure{Name: name, Reason: err.Error()})
			continue
		}
		res.Imported++
	}
	return res, nil
}

func (im *Importer) importRecord(ctx context.Context, rec Record) error {
	p := Product{
		Name:             rec.Name,
		Description:      rec.Description,
		ShortDescription: rec.ShortDescription,
		SKU:              rec.SKU,
		Price:            rec.Price,
		ManageStock:      rec.ManageStock,
		StockQuantity:    rec.StockQuantity,
		MetaData:         rec.MetaData,
	}
	if p.Name == "" {
		p.Name = untitledName
	}

	// a category that cannot be resolved is dropped from the product, the
	// record itself still imports
	for _, name := range rec.Categories {
		id, err := im.categories.Resolve(ctx, name)
		if err != nil {
			log.Printf("importer: category %q skipped: %v", name, err)
			continue
		}
		p.CategoryIDs = append(p.CategoryIDs, id)
	}

	// image failures are non-fatal: a broken URL only shrinks the gallery.
	// the first image that uploads becomes the primary one.
	for _, url := range rec.Images {
		stored, err := im.media.Upload(ctx, url, p.Name)
		if err != nil {
			log.Printf("importer: image %s skipped: %v", url, err)
			continue
		}
		if p.MainImage == "" {
			p.MainImage = stored
		} else {
			p.GalleryImages = append(p.GalleryImages, stored)
		}
	}

	return im.store.Save(ctx, p)
}
