// Code generated by hand for testing. DO NOT EDIT.

package skipped

func doStuff() {}

func trailing() {
	doStuff()
	return
}
