package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/textwatch/cmd/clock"
)

var renderCmd = newRenderCmd(viper.GetViper(), clock.System{})

// newRenderCmd builds the render command reading settings from v.
func newRenderCmd(v *viper.Viper, c clock.Clock) *cobra.Command {
	var phrase bool
	cmd := &cobra.Command{
		Use:   "render [HH:MM]",
		Short: "Print the three lines for a time",
		Long: `Prints the three lines the face shows at the given time, or now.
Empty lines are printed as blank lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			r, err := s.renderer()
			if err != nil {
				return err
			}

			tv := clock.FromTime(c.Now())
			if len(args) == 1 {
				if tv, err = clock.Parse(args[0]); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if phrase {
				_, err = fmt.Fprintln(out, r.Phrase(tv.Hour, tv.Minute))
				return err
			}
			lines := r.Render(tv.Hour, tv.Minute)
			for _, l := range lines.Strings() {
				if _, err := fmt.Fprintln(out, l); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&phrase, "phrase", false, "print the whole phrase on one line")
	return cmd
}
