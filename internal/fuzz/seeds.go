package fuzztests

import "testing"

const maxSeedBytes = 4 << 10

var expressionSeeds = []string{
	"",
	"2+2*3",
	"5*5+(2/2)",
	"50/(10*2)",
	"100 % 3 + 1",
	"(((2*3-5)))",
	".555",
	"100*100*(1/100)",
	"-(-5)",
	"--5",
	"2*-3",
	"5/0",
	"(2+3",
	"2+3)",
	"1.2.3",
	"2 $ 3",
	"()",
	"\t1 +\n2",
	"日+1",
	"1e5",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range expressionSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
