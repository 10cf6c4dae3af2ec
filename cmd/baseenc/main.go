package main

import (
	"fmt"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/bokysan/baseenc/internal/args"
	"github.com/bokysan/baseenc/internal/commands/decode"
	"github.com/bokysan/baseenc/internal/commands/describe"
	"github.com/bokysan/baseenc/internal/commands/encode"
	"github.com/bokysan/baseenc/internal/commands/version"
	beFlags "github.com/bokysan/baseenc/internal/flags"
	"github.com/bokysan/baseenc/internal/util"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseEnc is the main executable
type BaseEnc struct {
	parser *flags.Parser
}

// NewBaseEnc will create a new instance of BaseEnc and initialize the parser
func NewBaseEnc() *BaseEnc {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	be := &BaseEnc{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}
	be.parser.LongDescription = "Encode and decode binary data with any base 2, 4, 8, 16, 32 or 64 encoding. " +
		"Examples:\n" +
		"  " + executablePath + " encode -b64 -p=                      # RFC4648 base64\n" +
		"  " + executablePath + " encode -b64 -p= -w76 -s$'\\r\\n'       # MIME base64\n" +
		"  " + executablePath + " describe --base=hex                  # permissive hexadecimal\n" +
		"  " + executablePath + " decode --symbols=0123456789bcdfghjklmnpqrstuvwxyz \\\n" +
		"      --translate=BCDFGHJKLMNPQRSTUVWXYZbcdfghjklmnpqrstuvwxyz --least-significant-bit-first"

	be.setupGeneral()
	be.setupVersion()
	be.setupEncode()
	be.setupDecode()
	be.setupDescribe()

	return be
}

// setupGeneral will configure general options
func (be *BaseEnc) setupGeneral() {
	if _, err := be.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (be *BaseEnc) setupVersion() {
	cmd := &version.Command{}
	_, err := be.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (be *BaseEnc) setupEncode() {
	_, err := be.parser.AddCommand(
		"encode",
		"Encode the input",
		"Read binary data and write it encoded",
		encode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (be *BaseEnc) setupDecode() {
	_, err := be.parser.AddCommand(
		"decode",
		"Decode the input",
		"Read encoded data and write it decoded. Exits with code 2 on invalid input",
		decode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDescribe adds the `describe` command
func (be *BaseEnc) setupDescribe() {
	_, err := be.parser.AddCommand(
		"describe",
		"Describe the encoding",
		"Print the specification of the selected encoding as YAML",
		describe.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts baseenc and reads the configuration file
func main() {

	baseEnc := NewBaseEnc()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := beFlags.NewYamlParser(baseEnc.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseEnc.parser.Parse()
	util.MustErrorNilOrExit(err)

}
