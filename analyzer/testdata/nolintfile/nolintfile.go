// Package nolintfile is excluded completely.
//
//nolint:redundantreturn
package nolintfile

func doStuff() {}

func trailing() {
	doStuff()
	return
}
