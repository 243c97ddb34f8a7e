package qfxconvert

import "github.com/golang/glog"

// ExtractRecords flattens every transaction and every position in the
// document into two record sequences. Statements are walked in document
// order and entries within a statement keep their source order.
// An empty transaction sequence is not an error here, the caller decides
// what an empty conversion means.
func ExtractRecords(d *Document) (transactions, positions []Record) {
	transactions = make([]Record, 0)
	positions = make([]Record, 0)
	for _, s := range d.Statements() {
		ctx := BankAccountContext(s.Account)
		for _, t := range s.Transactions {
			transactions = append(transactions, FlattenRecord(t, ctx))
		}
		if len(s.Positions) == 0 {
			continue
		}
		pctx := PositionAccountContext(s.Account)
		for _, p := range s.Positions {
			positions = append(positions, FlattenRecord(p, pctx))
		}
	}
	glog.V(2).Infof("extracted %d transaction(s), %d position(s)", len(transactions), len(positions))
	return transactions, positions
}
