package integration_test

const (
	TestAccountId      = 1
	TestOtherAccountId = 2
)
