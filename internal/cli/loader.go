package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/shelf/internal/catalog"
)

// LoadError represents an error that occurred while loading book records
// from CUE input.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Record validation errors
	ErrCodeNoBooks    = "E101" // Missing top-level books list
	ErrCodeNotAList   = "E102" // books is not a list
	ErrCodeBadField   = "E103" // Missing or non-string field
	ErrCodeEmptyField = "E104" // Empty title/author/year

	// Command errors
	ErrCodeBadPosition = "E201" // Position non-numeric or out of range
	ErrCodeBadInput    = "E202" // Missing or empty field values
	ErrCodeDatabase    = "E203" // Database cannot be opened
)

// recordFields is the required shape of one imported entry.
var recordFields = []string{"title", "author", "year"}

// LoadRecords loads book records from a CUE file or directory.
//
// Entries live under the top-level field "books", a list of structs with
// string fields title, author, and year:
//
//	books: [
//	    {title: "Dune", author: "Frank Herbert", year: "1965"},
//	]
//
// All errors are collected rather than failing fast, so one import run
// reports every bad entry. Field validation (the three fields present,
// strings, non-empty) happens here at the input boundary - the core
// accepts whatever it is handed.
func LoadRecords(path string) ([]catalog.BookRecord, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("path not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing path: %v", err)}}
	}

	cfg := &load.Config{}
	args := []string{path}
	if info.IsDir() {
		cueFiles, err := FindCUEFiles(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
		}
		if len(cueFiles) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", path)}}
		}
		cfg.Dir = path
		args = []string{"."}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	ctx := cuecontext.New()
	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	booksVal := value.LookupPath(cue.ParsePath("books"))
	if !booksVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeNoBooks, Message: `no top-level "books" list found`, Pos: value.Pos()}}
	}

	iter, err := booksVal.List()
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotAList, Message: fmt.Sprintf(`"books" must be a list: %v`, err), Pos: booksVal.Pos()}}
	}

	var records []catalog.BookRecord
	var errs []error
	for i := 0; iter.Next(); i++ {
		rec, recErrs := extractRecord(iter.Value(), i)
		if len(recErrs) > 0 {
			errs = append(errs, recErrs...)
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

// extractRecord pulls the three required string fields out of one list
// element, validating presence, type, and non-emptiness.
func extractRecord(v cue.Value, index int) (catalog.BookRecord, []error) {
	var errs []error
	fields := make(map[string]string, len(recordFields))

	for _, name := range recordFields {
		fv := v.LookupPath(cue.ParsePath(name))
		if !fv.Exists() {
			errs = append(errs, &LoadError{
				Code:    ErrCodeBadField,
				Message: fmt.Sprintf("books[%d]: missing field %q", index, name),
				Pos:     v.Pos(),
			})
			continue
		}
		s, err := fv.String()
		if err != nil {
			errs = append(errs, &LoadError{
				Code:    ErrCodeBadField,
				Message: fmt.Sprintf("books[%d].%s: not a string: %v", index, name, err),
				Pos:     fv.Pos(),
			})
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			errs = append(errs, &LoadError{
				Code:    ErrCodeEmptyField,
				Message: fmt.Sprintf("books[%d].%s: must be non-empty", index, name),
				Pos:     fv.Pos(),
			})
			continue
		}
		fields[name] = s
	}

	if len(errs) > 0 {
		return catalog.BookRecord{}, errs
	}
	return catalog.BookRecord{
		Title:  fields["title"],
		Author: fields["author"],
		Year:   fields["year"],
	}, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".cue") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
