// internal/domain/models/ward.go
package models

// Ward status labels.
const (
	WardExcellent      = "excellent"
	WardGood           = "good"
	WardAverage        = "average"
	WardNeedsAttention = "needs-attention"
)

// WardPerformance is one row of the authority's ward performance list.
//
// Status is supplied by the data source alongside Score; nothing enforces
// that the two agree. Use EffectiveStatus when a label is required.
type WardPerformance struct {
	Ward       string `bson:"_id" json:"ward"`
	Score      int    `bson:"score" json:"score"`
	Households int    `bson:"households" json:"households"`
	Status     string `bson:"status,omitempty" json:"status,omitempty"`
	Seq        int    `bson:"seq" json:"-"`
}

// EffectiveStatus returns the supplied status, or the label derived from the
// score when the source left it blank.
func (w WardPerformance) EffectiveStatus() string {
	if w.Status != "" {
		return w.Status
	}
	return WardStatusForScore(w.Score)
}

// WardStatusForScore maps a segregation score to a ward status label.
//
//	>= 90 excellent, >= 80 good, >= 70 average, otherwise needs-attention
func WardStatusForScore(score int) string {
	switch {
	case score >= 90:
		return WardExcellent
	case score >= 80:
		return WardGood
	case score >= 70:
		return WardAverage
	default:
		return WardNeedsAttention
	}
}
