package search

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type recordApplier func(*gorm.DB, *RecordCriteria) *gorm.DB

// Strategy is one pre-determined way of filtering, joining and grouping the
// medical record query for a single predicate signature.
type Strategy struct {
	Name     string
	appliers []recordApplier
}

// recordStrategies maps every reachable signature to exactly one strategy.
// Adding a new optional criterion means adding one applier and extending the
// enumeration below; the table doubles on its own.
var recordStrategies = buildRecordStrategies()

func buildRecordStrategies() map[Signature]Strategy {
	table := make(map[Signature]Strategy, 48)
	for i := 0; i < 1<<6; i++ {
		sig := Signature{
			HasOwner:     i&(1<<0) != 0,
			HasStatus:    i&(1<<1) != 0,
			HasDiagnosis: i&(1<<2) != 0,
			HasTags:      i&(1<<3) != 0,
			AllMatch:     i&(1<<4) != 0,
			HasItems:     i&(1<<5) != 0,
		}
		// All-match without a tag set has nothing to match against and is
		// normalized away before lookup.
		if sig.AllMatch && !sig.HasTags {
			continue
		}
		table[sig] = Strategy{
			Name:     recordStrategyName(sig),
			appliers: recordAppliersFor(sig),
		}
	}
	return table
}

func recordAppliersFor(sig Signature) []recordApplier {
	var appliers []recordApplier
	if sig.HasOwner {
		appliers = append(appliers, filterOwner)
	}
	if sig.HasStatus {
		appliers = append(appliers, filterStatus)
	}
	if sig.HasDiagnosis {
		appliers = append(appliers, filterDiagnosis)
	}
	if sig.HasItems {
		appliers = append(appliers, filterItemMembership)
	}
	if sig.HasTags {
		appliers = append(appliers, filterTagMembership)
	}
	// Any fan-out join collapses back onto the root id so a record matched
	// through several tags or reviews appears exactly once.
	if sig.HasTags || sig.HasItems {
		appliers = append(appliers, groupByRoot)
	}
	if sig.AllMatch {
		appliers = append(appliers, havingAllTags)
	}
	return appliers
}

func recordStrategyName(sig Signature) string {
	var parts []string
	if sig.HasOwner {
		parts = append(parts, "owner")
	}
	if sig.HasStatus {
		parts = append(parts, "status")
	}
	if sig.HasDiagnosis {
		parts = append(parts, "diagnosis")
	}
	if sig.HasTags {
		if sig.AllMatch {
			parts = append(parts, "tags_all")
		} else {
			parts = append(parts, "tags_any")
		}
	}
	if sig.HasItems {
		parts = append(parts, "items")
	}
	if len(parts) == 0 {
		return "unfiltered"
	}
	return strings.Join(parts, "+")
}

// SelectRecordStrategy resolves a signature to its strategy. A miss means the
// enumeration above is incomplete and is surfaced as ErrUnresolvableStrategy.
func SelectRecordStrategy(sig Signature) (Strategy, error) {
	strategy, ok := recordStrategies[sig]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %+v", ErrUnresolvableStrategy, sig)
	}
	return strategy, nil
}

type itemApplier func(*gorm.DB, *ItemCriteria) *gorm.DB

// ItemStrategy is the treatment item counterpart of Strategy.
type ItemStrategy struct {
	Name     string
	appliers []itemApplier
}

var itemStrategies = buildItemStrategies()

func buildItemStrategies() map[ItemSignature]ItemStrategy {
	table := make(map[ItemSignature]ItemStrategy, 8)
	for i := 0; i < 1<<3; i++ {
		sig := ItemSignature{
			HasCategory: i&(1<<0) != 0,
			HasType:     i&(1<<1) != 0,
			HelpedOnly:  i&(1<<2) != 0,
		}
		table[sig] = ItemStrategy{
			Name:     itemStrategyName(sig),
			appliers: itemAppliersFor(sig),
		}
	}
	return table
}

func itemAppliersFor(sig ItemSignature) []itemApplier {
	var appliers []itemApplier
	if sig.HasCategory {
		appliers = append(appliers, filterCategory)
	}
	if sig.HasType {
		appliers = append(appliers, filterType)
	}
	if sig.HelpedOnly {
		appliers = append(appliers, filterHelpedOnly)
	}
	return appliers
}

func itemStrategyName(sig ItemSignature) string {
	var parts []string
	if sig.HasCategory {
		parts = append(parts, "category")
	}
	if sig.HasType {
		parts = append(parts, "type")
	}
	if sig.HelpedOnly {
		parts = append(parts, "helped")
	}
	if len(parts) == 0 {
		return "unfiltered"
	}
	return strings.Join(parts, "+")
}

// SelectItemStrategy resolves an item signature to its strategy.
func SelectItemStrategy(sig ItemSignature) (ItemStrategy, error) {
	strategy, ok := itemStrategies[sig]
	if !ok {
		return ItemStrategy{}, fmt.Errorf("%w: %+v", ErrUnresolvableStrategy, sig)
	}
	return strategy, nil
}
