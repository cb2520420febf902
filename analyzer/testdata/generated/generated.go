// Code generated by hand for testing. DO NOT EDIT.

package generated

func doStuff() {}

func trailing() {
	doStuff()
	return // want "Redundant return statement"
}

func lone() {
	return // want "Redundant return statement"
}
