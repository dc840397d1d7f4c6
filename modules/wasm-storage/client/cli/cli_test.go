package cli_test

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	testifysuite "github.com/stretchr/testify/suite"

	"cosmossdk.io/log"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	clitestutil "github.com/cosmos/cosmos-sdk/testutil/cli"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/client/cli"
	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

type CLITestSuite struct {
	testifysuite.Suite

	cancel    context.CancelFunc
	done      chan error
	grpcAddr  string
	dir       string
	clientCtx client.Context
}

func TestCLITestSuite(t *testing.T) {
	testifysuite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	app, err := simapp.NewApp(log.NewNopLogger(), dbm.NewMemDB(), wasmtesting.Authority)
	s.Require().NoError(err)
	s.Require().NoError(app.InitChain(simapp.NewDefaultGenesisState(app.AppCodec())))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.grpcAddr = listener.Addr().String()
	s.dir = s.T().TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error, 1)
	go func() {
		s.done <- app.ServeListeners(ctx, listener, nil)
	}()

	s.clientCtx = client.Context{}.
		WithCodec(app.AppCodec()).
		WithInterfaceRegistry(app.InterfaceRegistry()).
		WithKeyring(keyring.NewInMemory(app.AppCodec())).
		WithOutputFormat(flags.OutputFormatJSON)
}

func (s *CLITestSuite) TearDownTest() {
	s.cancel()

	select {
	case err := <-s.done:
		s.Require().NoError(err)
	case <-time.After(15 * time.Second):
		s.FailNow("node did not stop")
	}
}

func (s *CLITestSuite) writeWasmFile(name string, code []byte) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, code, 0o600))
	return path
}

func (s *CLITestSuite) execute(cmd *cobra.Command, args ...string) (string, error) {
	args = append(args,
		fmt.Sprintf("--%s=%s", flags.FlagGRPC, s.grpcAddr),
		fmt.Sprintf("--%s=true", flags.FlagGRPCInsecure),
		fmt.Sprintf("--%s=%s", flags.FlagOutput, flags.OutputFormatJSON),
	)

	out, err := clitestutil.ExecTestCLICmd(s.clientCtx, cmd, args)
	return out.String(), err
}

func (s *CLITestSuite) TestStoreAndQueryDataRequestWasm() {
	path := s.writeWasmFile("tally.wasm", wasmtesting.Code)
	hash := types.NewWasm(wasmtesting.Code, types.WasmTypeTally, time.Time{}).HashHex()

	out, err := s.execute(cli.NewTxCmd(),
		"store-data-request-wasm", path,
		fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Sender),
		fmt.Sprintf("--%s=%s", cli.FlagWasmType, "tally"),
	)
	s.Require().NoError(err, out)
	s.Require().Contains(out, hash)

	out, err = s.execute(cli.GetQueryCmd(), "data-request-wasm", hash)
	s.Require().NoError(err, out)
	s.Require().Contains(out, `"wasm_type":"WASM_TYPE_TALLY"`)

	out, err = s.execute(cli.GetQueryCmd(), "list-data-request-wasms")
	s.Require().NoError(err, out)
	s.Require().Contains(out, hash+",WASM_TYPE_TALLY")

	_, err = s.execute(cli.GetQueryCmd(), "overlay-wasm", hash)
	s.Require().Error(err)

	// storing the same code twice fails
	_, err = s.execute(cli.NewTxCmd(),
		"store-data-request-wasm", path,
		fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Sender),
	)
	s.Require().Error(err)
}

func (s *CLITestSuite) TestStoreOverlayWasm() {
	path := s.writeWasmFile("relayer.wasm", wasmtesting.AltCode)

	testCases := []struct {
		name    string
		from    string
		expPass bool
	}{
		{"failure: sender is not the authority", wasmtesting.Sender, false},
		{"success: authority", wasmtesting.Authority, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.execute(cli.NewTxCmd(),
				"store-overlay-wasm", path,
				fmt.Sprintf("--%s=%s", flags.FlagFrom, tc.from),
				fmt.Sprintf("--%s=%s", cli.FlagWasmType, "relayer"),
			)
			if tc.expPass {
				s.Require().NoError(err, out)
			} else {
				s.Require().Error(err)
			}
		})
	}

	out, err := s.execute(cli.GetQueryCmd(), "list-overlay-wasms")
	s.Require().NoError(err, out)
	s.Require().Contains(out, ",WASM_TYPE_RELAYER")
}

func (s *CLITestSuite) TestUpdateParams() {
	out, err := s.execute(cli.NewTxCmd(),
		"update-params",
		fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Authority),
		fmt.Sprintf("--%s=%d", cli.FlagMaxWasmSize, 1000),
	)
	s.Require().NoError(err, out)

	out, err = s.execute(cli.GetQueryCmd(), "params")
	s.Require().NoError(err, out)
	s.Require().Contains(out, `"max_wasm_size":"1000"`)
}

func (s *CLITestSuite) TestInvalidArgs() {
	testCases := []struct {
		name string
		cmd  *cobra.Command
		args []string
	}{
		{
			"missing file",
			cli.NewTxCmd(),
			[]string{"store-data-request-wasm", filepath.Join(s.dir, "missing.wasm"), fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Sender)},
		},
		{
			"invalid sender",
			cli.NewTxCmd(),
			[]string{"store-data-request-wasm", s.writeWasmFile("dr.wasm", wasmtesting.Code), fmt.Sprintf("--%s=%s", flags.FlagFrom, "not-an-address")},
		},
		{
			"unknown wasm type",
			cli.NewTxCmd(),
			[]string{"store-data-request-wasm", s.writeWasmFile("dr2.wasm", wasmtesting.Code), fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Sender), fmt.Sprintf("--%s=%s", cli.FlagWasmType, "unknown")},
		},
		{
			"overlay type for data request registry",
			cli.NewTxCmd(),
			[]string{"store-data-request-wasm", s.writeWasmFile("dr3.wasm", wasmtesting.Code), fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Sender), fmt.Sprintf("--%s=%s", cli.FlagWasmType, "relayer")},
		},
		{
			"malformed hash",
			cli.GetQueryCmd(),
			[]string{"data-request-wasm", "zz"},
		},
		{
			"missing hash argument",
			cli.GetQueryCmd(),
			[]string{"overlay-wasm"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.execute(tc.cmd, tc.args...)
			s.Require().Error(err)
		})
	}
}

func (s *CLITestSuite) TestFromKeyName() {
	record, _, err := s.clientCtx.Keyring.NewMnemonic("operator", keyring.English, sdk.FullFundraiserPath, keyring.DefaultBIP39Passphrase, hd.Secp256k1)
	s.Require().NoError(err)
	addr, err := record.GetAddress()
	s.Require().NoError(err)

	path := s.writeWasmFile("named.wasm", wasmtesting.Code)

	// the key name resolves to its address
	out, err := s.execute(cli.NewTxCmd(),
		"store-data-request-wasm", path,
		fmt.Sprintf("--%s=%s", flags.FlagFrom, "operator"),
		fmt.Sprintf("--%s=true", flags.FlagGenerateOnly),
	)
	s.Require().NoError(err, out)
	s.Require().Contains(out, `"sender":"`+addr.String()+`"`)

	out, err = s.execute(cli.NewTxCmd(),
		"store-data-request-wasm", path,
		fmt.Sprintf("--%s=%s", flags.FlagFrom, "operator"),
	)
	s.Require().NoError(err, out)
	s.Require().Contains(out, types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, time.Time{}).HashHex())

	_, err = s.execute(cli.NewTxCmd(),
		"store-data-request-wasm", path,
		fmt.Sprintf("--%s=%s", flags.FlagFrom, "unknown-key"),
	)
	s.Require().Error(err)
}

func (s *CLITestSuite) TestGenerateOnly() {
	path := s.writeWasmFile("generate.wasm", wasmtesting.Code)

	out, err := s.execute(cli.NewTxCmd(),
		"store-overlay-wasm", path,
		fmt.Sprintf("--%s=%s", flags.FlagFrom, wasmtesting.Authority),
		fmt.Sprintf("--%s=%s", cli.FlagWasmType, "relayer"),
		fmt.Sprintf("--%s=true", flags.FlagGenerateOnly),
	)
	s.Require().NoError(err, out)
	s.Require().Contains(out, `"sender":"`+wasmtesting.Authority+`"`)
	s.Require().Contains(out, `"wasm_type":"WASM_TYPE_RELAYER"`)

	// nothing was delivered to the node
	out, err = s.execute(cli.GetQueryCmd(), "list-overlay-wasms")
	s.Require().NoError(err, out)
	s.Require().Contains(out, `"hash_type_pairs":[]`)
}
