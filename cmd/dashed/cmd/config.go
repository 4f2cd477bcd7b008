package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/dashed/pkg/border"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved border attributes",
		Long: `Print the border attributes after defaults, the attribute file and
flag overrides are applied. The output is YAML and can be saved as
dashed.yaml.

Flags:
  --attrs FILE        Attribute file (.yaml, .yml, .toml or .hcl)
  --shape S           circle or rect
  --direction D       none, cw or ccw
  --speed S           low, normal or fast
  --color C           Color name, #RRGGBB or #AARRGGBB`,
		Usage: "dashed config [flags]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	var opts borderOptions
	for i := 0; i < len(args); i++ {
		next, ok, err := opts.parseBorderFlag(args, i)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown flag %q", args[i])
		}
		i = next
	}

	done, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer done()

	res, err := opts.resolve()
	if err != nil {
		return err
	}

	if res.Source != "" {
		fmt.Printf("# source: %s\n", res.Source)
	} else {
		fmt.Println("# source: defaults")
	}
	data, err := border.MarshalYAML(border.AttributesFromConfig(res.Config))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
