package tier

const (
	// one in-flight query per reward credential
	fanoutWorkerCount = 8

	pathBatch  = "batch"
	pathFanout = "fanout"
)
