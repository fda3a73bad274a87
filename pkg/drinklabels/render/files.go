package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

// Document identifies one output file.
type Document string

const (
	DocTables   Document = "tables"
	DocCrates   Document = "crates"
	DocSummary  Document = "summary"
	DocWorkbook Document = "workbook"
)

// PrintDocuments lists the printable documents produced by default.
var PrintDocuments = []Document{DocTables, DocCrates, DocSummary}

// ParseDocument converts a name such as "crates" into a Document.
func ParseDocument(s string) (Document, error) {
	d := Document(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DocTables, DocCrates, DocSummary, DocWorkbook:
		return d, nil
	}
	return "", fmt.Errorf("unknown document %q (must be tables, crates, summary or workbook)", s)
}

// SelectDocuments resolves document names, defaulting to PrintDocuments
// when names is empty, and appends the workbook when requested. Each
// document appears once, in first-mentioned order.
func SelectDocuments(names []string, workbook bool) ([]Document, error) {
	var docs []Document
	seen := make(map[Document]bool)
	add := func(d Document) {
		if !seen[d] {
			seen[d] = true
			docs = append(docs, d)
		}
	}

	if len(names) == 0 {
		for _, d := range PrintDocuments {
			add(d)
		}
	}
	for _, name := range names {
		d, err := ParseDocument(name)
		if err != nil {
			return nil, err
		}
		add(d)
	}
	if workbook {
		add(DocWorkbook)
	}
	return docs, nil
}

// FileName returns the file a document is written to.
func (d Document) FileName() string {
	switch d {
	case DocTables:
		return "Tables.pdf"
	case DocCrates:
		return "Crates.pdf"
	case DocSummary:
		return "Summary.pdf"
	case DocWorkbook:
		return "Drinks.xlsx"
	}
	return string(d)
}

// Write renders a single document to w.
func Write(w io.Writer, d Document, result *models.Result) error {
	switch d {
	case DocTables:
		return TableCards(w, result.Tables)
	case DocCrates:
		return CrateLabels(w, result.Zones)
	case DocSummary:
		return Summary(w, result.Tables, result.GlasswareTotals)
	case DocWorkbook:
		return Workbook(w, result)
	}
	return fmt.Errorf("unknown document %q", d)
}

// WriteFiles writes each document into dir and returns the paths written.
// Documents are independent: a failure stops the run but leaves files
// already written in place.
func WriteFiles(dir string, result *models.Result, docs []Document) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var written []string
	for _, d := range docs {
		path := filepath.Join(dir, d.FileName())
		if err := writeFile(path, d, result); err != nil {
			return written, fmt.Errorf("write %s: %w", d.FileName(), err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, d Document, result *models.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, d, result); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
