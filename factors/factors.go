// Package factors provides a lazily grown prime table and divisor enumeration used by the
// cross-pair estimators.
package factors

import "sort"

// Primes is a table of primes that grows on demand.
type Primes struct {
	table []int
}

// NewPrimes returns a prime table seeded with 2 and 3.
func NewPrimes() *Primes {
	return &Primes{table: []int{2, 3}}
}

// Nth returns the i-th prime, counting from zero.
func (p *Primes) Nth(i int) int {
	if p.table == nil {
		p.table = []int{2, 3}
	}
	for candidate := p.table[len(p.table)-1] + 2; len(p.table) <= i; candidate += 2 {
		if p.isPrime(candidate) {
			p.table = append(p.table, candidate)
		}
	}
	return p.table[i]
}

// isPrime tests candidate against the primes already in the table. The table always
// reaches the square root of the next odd candidate since p(k+1) < p(k)^2.
func (p *Primes) isPrime(candidate int) bool {
	for _, q := range p.table {
		if q*q > candidate {
			return true
		}
		if candidate%q == 0 {
			return false
		}
	}
	return true
}

// Factors answers divisor queries and memoizes the smallest prime factor of every
// number it has seen.
type Factors struct {
	primes   *Primes
	smallest []int
}

type primePower struct {
	prime int
	count int
}

// New returns a Factors backed by primes. A nil primes gets a fresh table.
func New(primes *Primes) *Factors {
	if primes == nil {
		primes = NewPrimes()
	}
	return &Factors{primes: primes, smallest: []int{0, 1, 2}}
}

// SmallestDivisor returns the smallest prime dividing num, or num itself when num < 2.
func (f *Factors) SmallestDivisor(num int) int {
	var i, j, prime, divisor int
	for i = len(f.smallest); i <= num; i++ {
		for j = 0; ; j++ {
			prime = f.primes.Nth(j)
			if prime*prime > i {
				divisor = i
				break
			}
			if i%prime == 0 {
				divisor = prime
				break
			}
		}
		f.smallest = append(f.smallest, divisor)
	}
	return f.smallest[num]
}

// Divisors returns in ascending order every divisor d of n with d*d <= n.
func (f *Factors) Divisors(n int) []int {
	if n <= 0 {
		return nil
	}
	var powers []primePower
	var d int
	for num := n; num > 1; num /= d {
		d = f.SmallestDivisor(num)
		if len(powers) > 0 && powers[len(powers)-1].prime == d {
			powers[len(powers)-1].count++
		} else {
			powers = append(powers, primePower{prime: d, count: 1})
		}
	}

	answer := []int{1}
	var i, k, size, factor int
	for _, pp := range powers {
		size = len(answer)
		for i = 0; i < size; i++ {
			factor = answer[i]
			for k = 0; k < pp.count; k++ {
				factor *= pp.prime
				if factor > n/factor {
					break
				}
				answer = append(answer, factor)
			}
		}
	}
	sort.Ints(answer)
	return answer
}
