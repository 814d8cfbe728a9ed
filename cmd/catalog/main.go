package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	flags := goflag.CommandLine
	klog.InitFlags(flags)
	pflag.CommandLine.AddGoFlagSet(flags)

	command := NewCatalogCommand(os.Stdout)
	err := command.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
