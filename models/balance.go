package models

// AccountBalance is one row of the balance report: the account id and the
// signed sum of its confirmed transactions, formatted with two decimal places.
type AccountBalance struct {
	ID  int    `json:"id"`
	Sum string `json:"sum"`
}
