package fair

import (
	"strings"

	"github.com/annefou/FIP-Analyzer/models"
)

// Bucket holds the resources declared for one principle, split by whether
// they apply to data or to metadata records.
type Bucket struct {
	Data     []models.ResourceEntry
	Metadata []models.ResourceEntry
}

// Table maps every one of the 15 principle keys to its bucket. All keys are
// always present, empty or not.
type Table map[string]*Bucket

// Empty reports whether the bucket holds no resources at all.
func (b *Bucket) Empty() bool {
	return len(b.Data) == 0 && len(b.Metadata) == 0
}

// NewTable returns a table with all 15 principle buckets initialized empty.
func NewTable() Table {
	t := make(Table, len(PrincipleOrder))
	for _, key := range PrincipleOrder {
		t[key] = &Bucket{}
	}
	return t
}

// Organize buckets declarations by FAIR principle. The question id is split
// on its last dash: the part before is the principle, a suffix of "MD"
// selects the metadata list and anything else the data list. An id without
// a dash is taken as the principle itself, on the data side. Declarations
// without a question id, or with an unknown principle, are dropped.
func Organize(declarations []models.Declaration) Table {
	table := NewTable()

	for _, decl := range declarations {
		if decl.QuestionID == "" {
			continue
		}

		principle := decl.QuestionID
		side := "D"
		if idx := strings.LastIndex(decl.QuestionID, "-"); idx >= 0 {
			principle = decl.QuestionID[:idx]
			side = decl.QuestionID[idx+1:]
		}

		bucket, ok := table[principle]
		if !ok {
			continue
		}

		entry := decl.Entry()
		if strings.EqualFold(side, "MD") {
			bucket.Metadata = append(bucket.Metadata, entry)
		} else {
			bucket.Data = append(bucket.Data, entry)
		}
	}

	return table
}
