package model_mocks

//go:generate mockgen -source=../event.go -destination=event_mocks.go -package=model_mocks
//go:generate mockgen -source=../account.go -destination=account_mocks.go -package=model_mocks

// This file contains the go:generate directive to generate mocks for the model interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/models/model_mocks
