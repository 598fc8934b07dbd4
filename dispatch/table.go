package dispatch

import "net/http"

// A Table holds registrations made at configuration time
// and builds a Dispatcher from them for each request.
//
// Once configured, a Table is safe for concurrent calls to Dispatcher.
// Calls to Add must not race with calls to Dispatcher.
type Table struct {
	registry
}

// NewTable constructs an empty *Table.
func NewTable(opts ...Option) *Table {
	return &Table{registry: newRegistry(opts)}
}

// Dispatcher constructs a *Dispatcher for r sharing the Table's registrations.
// Registrations added to the *Dispatcher do not appear in the Table.
func (t *Table) Dispatcher(r *http.Request) *Dispatcher {
	return &Dispatcher{registry: t.clone(), r: r}
}

// Execute is a convenience for t.Dispatcher(r).Execute().
func (t *Table) Execute(r *http.Request) (Response, error) {
	return t.Dispatcher(r).Execute()
}
