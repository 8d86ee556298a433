// Package importer loads catalog entries from a CSV export so a shop can
// manage its menu in a spreadsheet and sync it into the database.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cafecart/internal/domain"
	"cafecart/internal/repository/catalog"
)

// CSVImporter reads rows of kind,id,name,image,price and upserts them.
// kind is one of product, size, topping; for sizes the price column is the
// surcharge over the base price.
type CSVImporter struct {
	reader *csv.Reader
	writer catalog.Writer
}

func NewCSVImporter(r io.Reader, writer catalog.Writer) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, writer: writer}
}

// Run parses all rows and upserts each catalog entry. It returns the number
// of imported rows and stops on the first invalid one.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		kind := pick(record, index, "kind")
		id := pick(record, index, "id")
		name := pick(record, index, "name")
		image := pick(record, index, "image")
		priceStr := pick(record, index, "price")

		if id == "" || name == "" {
			return imported, fmt.Errorf("row %d: id and name are required", imported+2)
		}
		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil {
			return imported, fmt.Errorf("row %d: invalid price %q", imported+2, priceStr)
		}

		switch strings.ToLower(kind) {
		case "product":
			err = i.writer.UpsertProduct(ctx, domain.Product{ID: id, Name: name, Image: image, BasePrice: price})
		case "size":
			err = i.writer.UpsertSize(ctx, domain.Size{ID: id, Name: name, PriceAdd: price})
		case "topping":
			err = i.writer.UpsertTopping(ctx, domain.Topping{ID: id, Name: name, Price: price})
		default:
			err = fmt.Errorf("unknown kind %q", kind)
		}
		if err != nil {
			return imported, fmt.Errorf("row %d (%s %s): %w", imported+2, kind, id, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
