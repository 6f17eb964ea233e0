package utils

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"golang.org/x/term"
)

func Fatal(v any) {
	Exit(1, v)
}

// Exit reports v on stderr and terminates with code.
func Exit(code int, v any) {
	prefix := "fatal"
	if term.IsTerminal(int(os.Stderr.Fd())) {
		prefix = "\033[0;1;31mfatal\033[0m"
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, v)
	glog.Flush()
	os.Exit(code)
}

func MustNo(err error) {
	if err != nil {
		Fatal(err)
	}
}
