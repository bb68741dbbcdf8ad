package cli

import (
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cobra"
)

func validateCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.loader(args[0])()
			if err != nil {
				var ve *jsonschema.ValidationError
				if errors.As(err, &ve) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", ve)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d games)\n", args[0], c.Len())
			return nil
		},
	}
}
