package commands

import (
	"fmt"
	"os"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/close"
	"github.com/bluebooks-dev/bluebooks/internal/config"
	"github.com/bluebooks-dev/bluebooks/internal/entryio"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// project is everything the close and report commands need, resolved
// from the config file.
type project struct {
	cfg    *config.Config
	chart  *chart.Chart
	entity chart.Entity
}

func loadProject(configPath string) (*project, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	entity, err := cfg.Entity()
	if err != nil {
		return nil, err
	}
	c, err := cfg.Chart()
	if err != nil {
		return nil, err
	}
	return &project{cfg: cfg, chart: c, entity: entity}, nil
}

func (p *project) loadJournal(path string) (*ledger.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	entries, err := entryio.Decode(f, p.chart)
	if err != nil {
		return nil, err
	}
	return ledger.New(entries), nil
}

func (p *project) closeNames() close.SpecialNames {
	sa := p.cfg.SpecialAccounts
	return close.SpecialNames{
		OwnersDrawing:       sa.OwnersDrawing,
		SuspenseTaxPaid:     sa.SuspenseTaxPaid,
		SuspenseTaxReceived: sa.SuspenseTaxReceived,
		TaxReceivable:       sa.TaxReceivable,
		TaxPayable:          sa.TaxPayable,
	}
}

func (p *project) closeOptions() close.Options {
	return close.Options{
		MissingAccountFatal:   p.cfg.Behavior.MissingAccountFatal,
		SuppressZeroNetIncome: p.cfg.Behavior.SuppressZeroNetIncome,
	}
}

func (p *project) divisions() ([]close.Division, error) {
	divisions := make([]close.Division, 0, len(p.cfg.Divisions))
	for _, d := range p.cfg.Divisions {
		t, ok := p.chart.ByName(d.Account)
		if !ok {
			return nil, fmt.Errorf("proportional division: account %q is not in the chart", d.Account)
		}
		if d.BusinessRatio < 0 || d.BusinessRatio > 1 {
			return nil, fmt.Errorf("proportional division: ratio %v for %q is out of [0, 1]", d.BusinessRatio, d.Account)
		}
		divisions = append(divisions, close.Division{
			Title:         t,
			BusinessRatio: decimalFromRatio(d.BusinessRatio),
		})
	}
	return divisions, nil
}

// openingRule builds the recognizer for this period's opening entries.
func (p *project) openingRule(l *ledger.Ledger) (model.OpeningRule, error) {
	opening, err := close.OpeningDate(l)
	if err != nil {
		return model.OpeningRule{}, err
	}
	return model.OpeningRule{
		SoloProprietor: p.entity.Solo(),
		OpeningDate:    opening,
		CapitalName:    p.cfg.SpecialAccounts.Capital,
		Captions:       p.cfg.SpecialAccounts.OpeningCaptions,
	}, nil
}
