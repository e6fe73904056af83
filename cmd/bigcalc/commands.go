package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/rpn"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var log = logrus.New()

// RootCmd returns the bigcalc command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
	}
	addRootFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		EvalCmd(),
		CheckCmd(),
	)
	return cmd
}

func addRootFlags(flags *pflag.FlagSet) {
	flags.BoolP("verbose", "v", false, "log every evaluation step")
	flags.String("log-format", "text", "log format: text or json")
}

func setupLogger(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")
	log.SetOutput(cmd.ErrOrStderr())
	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Newf("unknown log format %q", format)
	}
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// EvalCmd evaluates a postfix expression.
func EvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [token...]",
		Short: "Evaluate a postfix expression from arguments or stdin",
		Long: `Evaluate a postfix (reverse Polish) expression.
Binary operators: + - * / %
Unary operators:  neg abs inc dec
Without arguments the expression is read from stdin.`,
		RunE: evalCmd,
	}
	return cmd
}

func evalCmd(cmd *cobra.Command, args []string) error {
	ev := rpn.New(rpn.WithLogger(log))
	var (
		d   bigint.Int
		err error
	)
	if len(args) > 0 {
		d, err = ev.Eval(strings.Join(args, " "))
	} else {
		d, err = ev.EvalReader(cmd.InOrStdin())
	}
	if err != nil {
		log.WithError(err).Error("evaluation failed")
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	return nil
}

// CheckCmd normalizes integers read from stdin.
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Read integers from stdin and print them normalized",
		RunE:  checkCmd,
	}
	addCheckCmdFlags(cmd.Flags())
	return cmd
}

func addCheckCmdFlags(flags *pflag.FlagSet) {
	flags.Bool("sum", false, "print only the sum of all integers")
}

func checkCmd(cmd *cobra.Command, args []string) error {
	sum, _ := cmd.Flags().GetBool("sum")
	in, out := bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout()
	var total bigint.Int
	for n := 1; ; n++ {
		var d bigint.Int
		_, err := fmt.Fscan(in, &d)
		// fmt reports a missing token as io.ErrUnexpectedEOF
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			log.WithError(err).WithField("token", n).Error("invalid integer")
			return errors.Wrapf(err, "token %v", n)
		}
		log.WithFields(logrus.Fields{"token": n, "digits": d.Prec()}).Debug("scanned")
		if !sum {
			fmt.Fprintln(out, d)
			continue
		}
		if err := total.AddAssign(d); err != nil {
			log.WithError(err).WithField("token", n).Error("sum failed")
			return err
		}
	}
	if sum {
		fmt.Fprintln(out, total)
	}
	return nil
}
