package vm

import "github.com/ethereum/go-ethereum/metrics"

// One counter per thing worth watching in production, not a histogram per
// opcode. analysisCount tracks how often Analyze runs per process, a proxy
// for how well callers are caching CodeAnalysis across repeated calls to the
// same contract.
var (
	analysisCount       = metrics.NewRegisteredCounter("evm/vm/analysisCount", nil)
	executeCount        = metrics.NewRegisteredCounter("evm/vm/executeCount", nil)
	outOfGasCount       = metrics.NewRegisteredCounter("evm/vm/outOfGasCount", nil)
	undefinedInstrCount = metrics.NewRegisteredCounter("evm/vm/undefinedInstructionCount", nil)
)
