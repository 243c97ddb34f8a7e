package qfxconvert

// Record is one flattened transaction or position, field name to
// normalized value.
type Record map[string]interface{}

// AccountContext holds the account identity cells merged into every record
// derived from one statement. Context cells are always present, empty
// values included.
type AccountContext struct {
	cells []Cell
}

// BankAccountContext returns the context merged into transaction records.
// bank_id falls back to the broker identifier for investment accounts.
func BankAccountContext(a Account) AccountContext {
	bankID := a.BankID
	if bankID == "" {
		bankID = a.BrokerID
	}
	return AccountContext{cells: []Cell{
		{Name: "account_id", Value: a.AccountID},
		{Name: "account_type", Value: a.AccountType},
		{Name: "bank_id", Value: bankID},
	}}
}

// PositionAccountContext returns the context merged into position records.
func PositionAccountContext(a Account) AccountContext {
	return AccountContext{cells: []Cell{
		{Name: "account_id", Value: a.AccountID},
		{Name: "broker_id", Value: a.BrokerID},
	}}
}

// FlattenRecord produces one flat record from the given entity, seeded with
// the account context. Context cells are written first and are never
// overwritten by same-named entity fields.
func FlattenRecord(p FieldProvider, ctx AccountContext) Record {
	r := make(Record, len(ctx.cells)+8)
	for _, c := range ctx.cells {
		r[c.Name] = c.Value
	}
	for _, f := range p.Fields() {
		for _, c := range NormalizeField(f.Name, f.Value) {
			if _, taken := r[c.Name]; taken {
				continue
			}
			r[c.Name] = c.Value
		}
	}
	return r
}

// Fields enumerates a transaction's data fields in OFX element order.
// The currency aggregate has no flat rendering and stays opaque.
func (t Transaction) Fields() []Field {
	return []Field{
		{Name: "trntype", Value: Text(string(t.Type))},
		{Name: "dtposted", Value: Temporal(t.Posted)},
		{Name: "trnamt", Value: OptionalAmount(t.Amount)},
		{Name: "fitid", Value: Text(t.ID)},
		{Name: "dtuser", Value: Temporal(t.Date)},
		{Name: "checknum", Value: Text(t.Number)},
		{Name: "name", Value: Text(t.Name)},
		{Name: "payee", Value: Text(t.Payee)},
		{Name: "memo", Value: Text(t.Memo)},
		{Name: "currency", Value: Opaque()},
	}
}

// Fields enumerates a position's data fields in OFX element order.
func (p Position) Fields() []Field {
	return []Field{
		{Name: "secid", Value: Identifier(p.SecID.UniqueID, p.SecID.UniqueIDType)},
		{Name: "heldinacct", Value: Text(p.HeldIn)},
		{Name: "postype", Value: Text(p.Type)},
		{Name: "units", Value: OptionalAmount(p.Units)},
		{Name: "unitprice", Value: OptionalAmount(p.UnitPrice)},
		{Name: "mktval", Value: OptionalAmount(p.MarketValue)},
		{Name: "dtpriceasof", Value: Temporal(p.PriceAsOf)},
		{Name: "memo", Value: Text(p.Memo)},
	}
}
