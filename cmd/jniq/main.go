// jniq synthesizes JVM descriptors from human-readable signatures and
// probes method lookups against the in-memory testbed VM.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/jvm-runtime/descriptor"
	"github.com/wippyai/jvm-runtime/runtime"
	"github.com/wippyai/jvm-runtime/testbed"
)

func main() {
	var (
		sig         = flag.String("sig", "", `Method signature, e.g. "(int32,int64)bool"`)
		typ         = flag.String("type", "", `Single type, e.g. "[]int32" or "java/lang/String"`)
		probe       = flag.String("probe", "", `Probe a testbed lookup, "class#method" (requires -sig)`)
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *sig == "" && *typ == "" {
		fmt.Fprintln(os.Stderr, `Usage: jniq -sig "(int32,int64)bool"`)
		fmt.Fprintln(os.Stderr, `       jniq -type "[]java/lang/String"`)
		fmt.Fprintln(os.Stderr, `       jniq -sig "()void" -probe "java/lang/Object#notify"`)
		fmt.Fprintln(os.Stderr, `       jniq -i  (interactive mode)`)
		os.Exit(1)
	}

	if err := run(*sig, *typ, *probe); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sigStr, typStr, probeStr string) error {
	if typStr != "" {
		t, err := descriptor.ParseType(typStr)
		if err != nil {
			return err
		}
		fmt.Println(t)
	}

	if sigStr == "" {
		return nil
	}
	sig, err := descriptor.Parse(sigStr)
	if err != nil {
		return err
	}
	fmt.Println(sig)

	if probeStr == "" {
		return nil
	}
	className, methodName, found := strings.Cut(probeStr, "#")
	if !found {
		return fmt.Errorf("probe %q must be class#method", probeStr)
	}

	env := runtime.NewEnv(testbed.NewPreloaded())
	cls := env.FindClass(className)
	if e := cls.Err(); e != nil {
		return e
	}
	m := cls.Value().GetMethod(methodName, sig)
	if e := m.Err(); e != nil {
		return e
	}
	fmt.Printf("resolved %s.%s %s\n", className, methodName, m.Value().Descriptor())
	return nil
}
