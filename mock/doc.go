// Package mock provides test doubles for linediff interfaces.
package mock
