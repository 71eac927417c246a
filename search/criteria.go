package search

// SortDirection is the requested ordering direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// RecordSortField enumerates the columns a medical record search may order by.
type RecordSortField string

const (
	RecordSortID        RecordSortField = "id"
	RecordSortTitle     RecordSortField = "title"
	RecordSortBody      RecordSortField = "body"
	RecordSortCreatedAt RecordSortField = "created_at"
)

// ItemSortField enumerates the columns a treatment item search may order by.
type ItemSortField string

const (
	ItemSortTitle         ItemSortField = "title"
	ItemSortPrice         ItemSortField = "price"
	ItemSortAverageRating ItemSortField = "average_rating"
	ItemSortCreatedAt     ItemSortField = "created_at"
)

// RecordCriteria is the raw, optional combination of medical record search
// criteria. Every filter is optional; sort field and direction default to
// id ascending.
type RecordCriteria struct {
	PatientID        *string
	IsPublic         *bool
	DiagnosisID      *uint
	SymptomIDs       []uint
	MatchAllSymptoms bool
	ItemIDs          []uint
	SortField        RecordSortField
	SortDirection    SortDirection
	Limit            *int
	Offset           *int
	WithSymptoms     bool
	WithReviews      bool
}

// Signature is the canonical presence encoding of a record criteria set. It is
// the key of the strategy table.
type Signature struct {
	HasOwner     bool
	HasStatus    bool
	HasDiagnosis bool
	HasTags      bool
	AllMatch     bool
	HasItems     bool
}

// Normalize canonicalizes the criteria in place and returns its signature:
// id sets are deduplicated, an empty tag set collapses to "no tag criterion",
// and an all-match request without tags is cleared since there is nothing to
// match against. No I/O happens here.
func (c *RecordCriteria) Normalize() Signature {
	c.SymptomIDs = dedupeIDs(c.SymptomIDs)
	c.ItemIDs = dedupeIDs(c.ItemIDs)
	if len(c.SymptomIDs) == 0 {
		c.MatchAllSymptoms = false
	}
	if c.SortField == "" {
		c.SortField = RecordSortID
	}
	if c.SortDirection == "" {
		c.SortDirection = SortAsc
	}
	return Signature{
		HasOwner:     c.PatientID != nil,
		HasStatus:    c.IsPublic != nil,
		HasDiagnosis: c.DiagnosisID != nil,
		HasTags:      len(c.SymptomIDs) > 0,
		AllMatch:     c.MatchAllSymptoms,
		HasItems:     len(c.ItemIDs) > 0,
	}
}

// ItemCriteria is the optional combination of treatment item search criteria.
type ItemCriteria struct {
	CategoryID    *uint
	TypeID        *uint
	HelpedOnly    bool
	SortField     ItemSortField
	SortDirection SortDirection
	Limit         *int
	Offset        *int
	WithReviews   bool
}

// ItemSignature is the presence encoding of an item criteria set.
type ItemSignature struct {
	HasCategory bool
	HasType     bool
	HelpedOnly  bool
}

// Normalize canonicalizes the item criteria and returns its signature.
func (c *ItemCriteria) Normalize() ItemSignature {
	if c.SortField == "" {
		c.SortField = ItemSortTitle
	}
	if c.SortDirection == "" {
		c.SortDirection = SortAsc
	}
	return ItemSignature{
		HasCategory: c.CategoryID != nil,
		HasType:     c.TypeID != nil,
		HelpedOnly:  c.HelpedOnly,
	}
}

func dedupeIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
