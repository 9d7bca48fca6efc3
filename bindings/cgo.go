package main

/*
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"
)

//export takeql_run
func takeql_run(program *C.char) *C.char {
	return C.CString(string(runJSON(C.GoString(program))))
}

//export takeql_free
func takeql_free(ptr *C.char) {
	C.free(unsafe.Pointer(ptr))
}

func main() {}
