package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/metrics"
	"github.com/DjordjeVuckovic/rule-hunter/internal/namehash"
	"github.com/DjordjeVuckovic/rule-hunter/internal/skiprule"
)

const (
	DefaultHashLen = 8
	renamePrefix   = "_"

	KindType = "type"
)

// Entry is the decision taken for one type or member.
type Entry struct {
	Kind     string `json:"kind"`
	FullName string `json:"fullName"`
	Kept     bool   `json:"kept"`
	RuleID   string `json:"ruleId,omitempty"`
	NewName  string `json:"newName,omitempty"`
}

type Plan struct {
	Catalog string  `json:"catalog"`
	Entries []Entry `json:"entries"`
	Kept    int     `json:"kept"`
	Renamed int     `json:"renamed"`
}

func (p *Plan) add(e Entry) {
	p.Entries = append(p.Entries, e)
	if e.Kept {
		p.Kept++
	} else {
		p.Renamed++
	}
	metrics.RecordPlanEntry(e.Kept)
}

// Planner decides which entities of a catalog keep their names.
type Planner struct {
	rules   *skiprule.RuleSet
	hashLen int
}

func New(rules *skiprule.RuleSet, hashLen int) *Planner {
	if hashLen <= 0 {
		hashLen = DefaultHashLen
	}
	return &Planner{rules: rules, hashLen: hashLen}
}

// Plan walks every type and member of cat. Members of kept types are still
// decided one by one. The first evaluation error aborts the plan.
func (p *Planner) Plan(ctx context.Context, cat *catalog.Catalog) (*Plan, error) {
	inherits := catalog.NewInheritMap(cat)
	plan := &Plan{Catalog: cat.Name, Entries: make([]Entry, 0, len(cat.Types))}

	for i := range cat.Types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t := &cat.Types[i]
		matched, err := p.rules.MatchType(t, inherits)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", t.FullName, err)
		}
		plan.add(p.entry(KindType, t.FullName, matched))

		for j := range t.Members {
			m := &t.Members[j]
			matched, err := p.rules.MatchMember(m, t, inherits)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", t.MemberFullName(m), err)
			}
			plan.add(p.entry(string(m.Kind), t.MemberFullName(m), matched))
		}
	}

	slog.Debug("Rename plan computed",
		"catalog", cat.Name,
		"kept", plan.Kept,
		"renamed", plan.Renamed,
	)
	return plan, nil
}

func (p *Planner) entry(kind, fullName string, matched *skiprule.Rule) Entry {
	if matched != nil {
		return Entry{Kind: kind, FullName: fullName, Kept: true, RuleID: matched.ID}
	}
	return Entry{
		Kind:     kind,
		FullName: fullName,
		NewName:  renamePrefix + namehash.Short(fullName, p.hashLen),
	}
}
