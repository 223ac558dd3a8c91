package close

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// settleTaxSuspense nets the tax suspense accounts into a single
// receivable or payable position. The step stands down silently when
// the bookkeeper has already settled tax by hand, when the suspense
// accounts are unused, or when a needed target account is missing from
// the chart (unless MissingAccountFatal).
func (s *Settlement) settleTaxSuspense(l *ledger.Ledger, date time.Time) error {
	paidTitle, paidOK := s.chart.ByName(s.names.SuspenseTaxPaid)
	receivedTitle, receivedOK := s.chart.ByName(s.names.SuspenseTaxReceived)
	if !paidOK && !receivedOK {
		return nil
	}

	if receivable, ok := s.chart.ByName(s.names.TaxReceivable); ok && l.Uses(receivable) {
		s.skip("tax settlement skipped: tax receivable already posted")
		return nil
	}
	if payable, ok := s.chart.ByName(s.names.TaxPayable); ok && l.Uses(payable) {
		s.skip("tax settlement skipped: tax payable already posted")
		return nil
	}

	var paid, received int64
	if paidOK {
		paid = l.DebitTotal(paidTitle) - l.CreditTotal(paidTitle)
	}
	if receivedOK {
		received = l.CreditTotal(receivedTitle) - l.DebitTotal(receivedTitle)
	}
	if paid == 0 && received == 0 {
		return nil
	}
	if paid < 0 || received < 0 {
		s.skip("tax settlement skipped: a suspense account carries a reversed balance")
		return nil
	}

	var debits, credits []model.Line
	if received != 0 {
		debits = append(debits, model.Line{Title: receivedTitle, Amount: received})
	}
	if paid != 0 {
		credits = append(credits, model.Line{Title: paidTitle, Amount: paid})
	}
	switch {
	case received > paid:
		payable, ok := s.chart.ByName(s.names.TaxPayable)
		if !ok {
			if s.opts.MissingAccountFatal {
				return fmt.Errorf("tax settlement: account %q is not in the chart", s.names.TaxPayable)
			}
			s.skip(fmt.Sprintf("tax settlement skipped: account %q is not in the chart", s.names.TaxPayable))
			return nil
		}
		credits = append(credits, model.Line{Title: payable, Amount: received - paid})
	case paid > received:
		receivable, ok := s.chart.ByName(s.names.TaxReceivable)
		if !ok {
			if s.opts.MissingAccountFatal {
				return fmt.Errorf("tax settlement: account %q is not in the chart", s.names.TaxReceivable)
			}
			s.skip(fmt.Sprintf("tax settlement skipped: account %q is not in the chart", s.names.TaxReceivable))
			return nil
		}
		debits = append(debits, model.Line{Title: receivable, Amount: paid - received})
	}

	l.Append(model.NewEntry(date, DescTaxSettlement, debits, credits))
	s.log.Info("tax suspense settled",
		zap.Int64("paid", paid), zap.Int64("received", received))
	return nil
}
