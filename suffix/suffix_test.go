package suffix

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"
)

func naiveSuffixArray(text []byte) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func randomText(r *rand.Rand, n int, alphabet string) []byte {
	ans := make([]byte, n)
	for i := range ans {
		ans[i] = alphabet[r.Intn(len(alphabet))]
	}
	return ans
}

var suffixArrayTests = []string{
	"",
	"A",
	"AAAAAAAA",
	"ACGTACGT",
	"mississippi",
	"banana",
	"abracadabra",
	"\x00ACGT\x00TGCA\x00",
	"\x00AATT\x00AATT\x00",
	"GATTACAGATTACA\x00\x00CATTAG",
}

func TestBuildSuffixArray(t *testing.T) {
	for _, test := range suffixArrayTests {
		text := []byte(test)
		expected := naiveSuffixArray(text)
		actual := BuildSuffixArray(text)
		if len(actual) != len(expected) {
			t.Errorf("wrong suffix array length for %q: expected %d got %d", test, len(expected), len(actual))
			continue
		}
		for i := range expected {
			if expected[i] != actual[i] {
				t.Errorf("problem with suffix array of %q\nexpected: %v\nactual:   %v", test, expected, actual)
				break
			}
		}
	}
}

func TestBuildSuffixArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	alphabets := []string{"AC", "ACGT", "ACGT\x00", "ACDEFGHIKLMNPQRSTVWY"}
	for trial := 0; trial < 40; trial++ {
		text := randomText(r, 1+r.Intn(600), alphabets[trial%len(alphabets)])
		expected := naiveSuffixArray(text)
		actual := BuildSuffixArray(text)
		for i := range expected {
			if expected[i] != actual[i] {
				t.Errorf("problem with random suffix array (trial %d) at rank %d: expected %d got %d", trial, i, expected[i], actual[i])
				break
			}
		}
	}
}

func commonPrefix(text []byte, a, b int) int {
	var h int
	for a+h < len(text) && b+h < len(text) && text[a+h] == text[b+h] && text[a+h] != 0 {
		h++
	}
	return h
}

func TestBuildLcpArray(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 50, 1000, 10000} {
		for _, alphabet := range []string{"ACGT", "AT\x00"} {
			text := randomText(r, n, alphabet)
			sa := BuildSuffixArray(text)
			lcp := BuildLcpArray(text, sa, Inverse(sa))
			if lcp[0] != 0 {
				t.Errorf("lcp[0] should be 0, got %d", lcp[0])
			}
			for i := 1; i < len(sa); i++ {
				if expected := commonPrefix(text, sa[i-1], sa[i]); lcp[i] != expected {
					t.Errorf("problem with lcp of length %d text at rank %d: expected %d got %d", n, i, expected, lcp[i])
					break
				}
			}
		}
	}
}

func TestLcpNullNeverMatches(t *testing.T) {
	text := []byte("\x00\x00\x00AB\x00AB\x00")
	sa := BuildSuffixArray(text)
	lcp := BuildLcpArray(text, sa, Inverse(sa))
	for i := 1; i < len(sa); i++ {
		if text[sa[i]] == 0 && lcp[i] != 0 {
			t.Errorf("suffix starting with a separator at rank %d has lcp %d", i, lcp[i])
		}
		if lcp[i] > 2 {
			t.Errorf("lcp crossed a separator at rank %d: %d", i, lcp[i])
		}
	}
}

func TestInverse(t *testing.T) {
	sa := BuildSuffixArray([]byte("banana"))
	inv := Inverse(sa)
	for i := range sa {
		if inv[sa[i]] != i {
			t.Errorf("inverse suffix array broken at rank %d", i)
		}
	}
}
