package domain

// IdempotencyRecord maps a client-supplied idempotency key to the result of
// the request that first carried it. The record is a replay cache keyed purely
// on the token: a later request with the same key gets the stored result back
// even if its payload differs. Created once, never updated, never deleted.
type IdempotencyRecord struct {
	Key     string
	Request string
	Result  string
}
