package cmd

import (
	"fmt"
	"strconv"
)

// headlessOptions are the flags shared by render and trace.
type headlessOptions struct {
	ticks int
	out   string
	text  *string
	json  bool
}

func parseHeadless(name string, args []string) (headlessOptions, error) {
	opts := headlessOptions{ticks: 30}
	value := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[i+1], nil
	}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--ticks", "-ticks":
			v, err := value(i, arg)
			if err != nil {
				return opts, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return opts, fmt.Errorf("%s: invalid tick count %q", arg, v)
			}
			opts.ticks = n
			i++
		case "--out", "-out", "-o":
			v, err := value(i, arg)
			if err != nil {
				return opts, err
			}
			opts.out = v
			i++
		case "--text":
			v, err := value(i, arg)
			if err != nil {
				return opts, err
			}
			opts.text = &v
			i++
		case "--json":
			opts.json = true
		default:
			return opts, fmt.Errorf("%s: unknown flag %q", name, arg)
		}
	}
	return opts, nil
}
