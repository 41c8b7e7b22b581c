package huffnpuff

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

// makeTestInput returns bytes 0..5 with frequencies 5, 9, 12, 13, 16, 45,
// first seen in ascending order.
func makeTestInput() []byte {
	freqs := []int{5, 9, 12, 13, 16, 45}
	var buf bytes.Buffer
	for symbol, freq := range freqs {
		buf.Write(bytes.Repeat([]byte{byte(symbol)}, freq))
	}
	return buf.Bytes()
}

func makeTestTree(data []byte) *Tree {
	var ft FrequencyTable
	ft.Init(data)
	var tree Tree
	tree.Init(&ft)
	return &tree
}

func TestTree_Init(t *testing.T) {
	tree := makeTestTree(makeTestInput())

	expectDebug := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\t[0] = leaf{0x00, 5}\n",
		"\t[1] = leaf{0x01, 9}\n",
		"\t[2] = leaf{0x02, 12}\n",
		"\t[3] = leaf{0x03, 13}\n",
		"\t[4] = leaf{0x04, 16}\n",
		"\t[5] = leaf{0x05, 45}\n",
		"\t[6] = node{0, 1, 14}\n",
		"\t[7] = node{2, 3, 25}\n",
		"\t[8] = node{6, 4, 30}\n",
		"\t[9] = node{7, 8, 55}\n",
		"\t[10] = node{5, 9, 100}\n",
		"}\n",
	}, "")
	actualDebug := tree.DebugString()
	if expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}

	expectString := "(0x05 ((0x02 0x03) ((0x00 0x01) 0x04)))"
	if actual := tree.String(); expectString != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actual)
	}
	if tree.Weight(tree.Root()) != 100 {
		t.Errorf("expected root weight 100, got %d", tree.Weight(tree.Root()))
	}
}

func TestTree_TieBreak(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "ab", expect: "(0x61 0x62)"},
		{input: "ba", expect: "(0x62 0x61)"},
		{input: "aab", expect: "(0x62 0x61)"},
		{input: "abc", expect: "(0x63 (0x61 0x62))"},
		{input: "cba", expect: "(0x61 (0x63 0x62))"},
		{input: "A", expect: "(0x41 0x40)"},
		{input: "@@@", expect: "(0x40 0x41)"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			actual := makeTestTree([]byte(row.input)).String()
			if row.expect != actual {
				t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCodeTable(t *testing.T) {
	var ct CodeTable
	ct.Init(makeTestTree(makeTestInput()))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0x00) = \"1100\"\n",
		"\tEncode(0x01) = \"1101\"\n",
		"\tEncode(0x02) = \"100\"\n",
		"\tEncode(0x03) = \"101\"\n",
		"\tEncode(0x04) = \"111\"\n",
		"\tEncode(0x05) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if hc := ct.Encode(0x06); hc.Size != 0 {
		t.Errorf("expected no code for 0x06, got %s", hc)
	}
}

func TestCodeTable_SingleSymbol(t *testing.T) {
	var ct CodeTable
	ct.Init(makeTestTree(bytes.Repeat([]byte{0x41}, 1000)))

	if hc := ct.Encode(0x41); hc != MakeCode(1, 0) {
		t.Errorf("expected code \"0\" for 0x41, got %s", hc)
	}
	if ct.MinSize() != 1 || ct.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", ct.MinSize(), ct.MaxSize())
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		data := make([]byte, 1+rng.Intn(4096))
		alphabet := 1 + rng.Intn(256)
		for index := range data {
			// Squaring skews the distribution so code lengths vary.
			x := rng.Intn(alphabet)
			data[index] = byte(x * x / alphabet)
		}

		var ct CodeTable
		ct.Init(makeTestTree(data))
		if !ct.IsPrefixFree() {
			var buf strings.Builder
			_, _ = ct.Dump(&buf)
			t.Fatalf("iteration %d: code table is not prefix-free:\n%s", iter, buf.String())
		}
		for _, b := range data {
			if ct.Encode(b).Size == 0 {
				t.Fatalf("iteration %d: byte 0x%02x has no code", iter, b)
			}
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	type testRow struct {
		a, b   Code
		expect bool
	}

	testData := [...]testRow{
		{a: MakeCode(1, 0x0), b: MakeCode(3, 0x1), expect: true},
		{a: MakeCode(1, 0x1), b: MakeCode(3, 0x1), expect: false},
		{a: MakeCode(2, 0x2), b: MakeCode(4, 0xb), expect: true},
		{a: MakeCode(3, 0x5), b: MakeCode(3, 0x5), expect: true},
		{a: MakeCode(4, 0xb), b: MakeCode(2, 0x2), expect: false},
	}
	for _, row := range testData {
		t.Run(row.a.String()+"_"+row.b.String(), func(t *testing.T) {
			if actual := row.a.IsPrefixOf(row.b); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
