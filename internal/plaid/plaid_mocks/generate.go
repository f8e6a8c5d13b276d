package plaid_mocks

//go:generate mockgen -source=../gateway.go -destination=gateway_mocks.go -package=plaid_mocks
