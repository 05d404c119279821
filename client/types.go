package client

// RequestType of an execution request. The node returns after the
// transaction was executed locally.
const waitForLocalExecution = "WaitForLocalExecution"

// executeOptions select what the node includes in an execution response.
type executeOptions struct {
	ShowEffects bool `json:"showEffects"`
}

// builderResult is the response of every unsafe_* transaction builder
// method.
type builderResult struct {
	TxBytes string `json:"txBytes"`
}

type executionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type transactionEffects struct {
	Status            executionStatus `json:"status"`
	TransactionDigest string          `json:"transactionDigest"`
}

// executeResult is the response of sui_executeTransactionBlock.
type executeResult struct {
	Digest  string              `json:"digest"`
	Effects *transactionEffects `json:"effects"`
}

// dryRunResult is the response of sui_dryRunTransactionBlock.
type dryRunResult struct {
	Effects *transactionEffects `json:"effects"`
}
