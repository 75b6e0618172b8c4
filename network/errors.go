package network

import "errors"

var (
	// ErrConnectionFailed indicates the client could not connect to the node.
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrConfirmationFailed indicates the wait for transaction inclusion was
	// interrupted before a receipt arrived.
	ErrConfirmationFailed = errors.New("network: confirmation failed")
)
