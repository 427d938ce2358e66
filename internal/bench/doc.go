// Package bench measures hybrid vector distances against raw float64
// distances.
//
// A run times Iterations passes over every consecutive vector pair, once with
// hybrid vectors and once with the raw input, and records the speedup
// (raw time / hybrid time) and the relative error of the summed distances.
// Runs are repeated Runs times and summarized with min/max/mean/stddev.
//
//	cfg := bench.DefaultConfig()
//	cfg.Runs = 10
//	r, _ := bench.NewRunner(cfg)
//	report, _ := r.Run(ctx)
//	_ = report.WriteCSV("./out")
package bench
