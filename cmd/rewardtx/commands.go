package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-rewardtx/cmd"
	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/rewardtx"
	"github.com/spacemeshos/go-rewardtx/sql"
	"github.com/spacemeshos/go-rewardtx/validation"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "rewardtx",
		Short:        "inspect and execute block reward transactions",
		SilenceUsage: true,
		Version:      cmd.Version,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.setup(c)
		},
	}
	cmd.AddFlags(root.PersistentFlags())
	root.AddCommand(
		decodeCommand(a),
		encodeCommand(),
		execCommand(a),
		registerCommand(a),
		accountCommand(a),
		involvedCommand(a),
	)
	return root
}

// execute runs the command and releases the app afterwards, also when the command failed.
func execute(ctx context.Context, root *cobra.Command, a *app) error {
	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close(ctx))
}

func printJSON(w io.Writer, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func decodeArg(arg string) (rewardtx.Reward, error) {
	raw, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return rewardtx.Decode(raw)
}

func decodeCommand(a *app) *cobra.Command {
	var resolve bool
	c := &cobra.Command{
		Use:   "decode <hex>",
		Short: "print reward transaction as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tx, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			var resolver rewardtx.KeyIDResolver
			if resolve {
				if err := a.openLedger(); err != nil {
					return err
				}
				resolver = a.ledger
			}
			a.logger.Debug("decoded", zap.String("tx", tx.Describe(resolver)))
			return printJSON(c.OutOrStdout(), tx.Object(resolver))
		},
	}
	c.Flags().BoolVar(&resolve, "resolve", false, "resolve recipient address using the ledger")
	return c
}

func encodeCommand() *cobra.Command {
	var (
		uid     string
		value   uint64
		values  map[string]string
		profits uint64
		height  int32
		multi   bool
	)
	c := &cobra.Command{
		Use:   "encode",
		Short: "encode reward transaction into hex",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			recipient, err := types.ParseUserID(uid)
			if err != nil {
				return err
			}
			var tx rewardtx.Reward
			if multi {
				coins, err := parseValues(values)
				if err != nil {
					return err
				}
				tx = rewardtx.NewMultiCoinBlockReward(recipient, coins, profits, height)
			} else {
				tx = rewardtx.NewBlockReward(recipient, value, height)
			}
			raw, err := rewardtx.Encode(tx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), hex.EncodeToString(raw))
			return err
		},
	}
	c.Flags().StringVar(&uid, "uid", "", "recipient, either height-index or hex encoded public key")
	c.Flags().Uint64Var(&value, "value", 0, "reward value in WICC")
	c.Flags().StringToStringVar(&values, "values", nil, "reward values by coin, for example WICC=10,WUSD=20")
	c.Flags().Uint64Var(&profits, "profits", 0, "delegate profits in WICC")
	c.Flags().Int32Var(&height, "height", 0, "valid height")
	c.Flags().BoolVar(&multi, "multi", false, "encode multi coin reward")
	c.MarkFlagsMutuallyExclusive("value", "values")
	_ = c.MarkFlagRequired("uid")
	return c
}

func parseValues(values map[string]string) (map[types.CoinType]uint64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	rst := make(map[types.CoinType]uint64, len(values))
	for name, amount := range values {
		coin, err := types.ParseCoinType(name)
		if err != nil {
			return nil, err
		}
		parsed, err := strconv.ParseUint(amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("amount of %s: %w", name, err)
		}
		rst[coin] = parsed
	}
	return rst, nil
}

func parsePhase(s string) (rewardtx.Phase, error) {
	switch s {
	case rewardtx.Provisional.String():
		return rewardtx.Provisional, nil
	case rewardtx.Final.String():
		return rewardtx.Final, nil
	}
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", rewardtx.ErrInvalidPhase, s)
	}
	return rewardtx.PhaseFromIndex(index)
}

func execCommand(a *app) *cobra.Command {
	var (
		height int32
		phase  string
	)
	c := &cobra.Command{
		Use:   "exec <hex>",
		Short: "execute reward transaction against the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tx, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			p, err := parsePhase(phase)
			if err != nil {
				return err
			}
			if err := a.openLedger(); err != nil {
				return err
			}
			executor := rewardtx.NewExecutor(rewardtx.WithLogger(a.logger.Named("executor")))
			state := validation.NewState(a.logger.Named("validation"))
			err = a.db.WithTx(c.Context(), func(dtx *sql.Tx) error {
				l := a.ledger.WithExecutor(dtx)
				if err := executor.Check(tx, height, state); err != nil {
					return err
				}
				return executor.Execute(tx, height, p, rewardtx.Cache{Accounts: l, TxAddresses: l}, state)
			})
			if !state.IsValid() {
				rejections := make(rewardtx.Object, 0)
				for _, r := range state.Rejections() {
					rejections = append(rejections, rewardtx.Field{Key: r.Code, Value: r.Message()})
				}
				if perr := printJSON(c.OutOrStdout(), rejections); perr != nil {
					return perr
				}
			}
			if err != nil {
				return err
			}
			a.logger.Info("executed", zap.Stringer("phase", p), zap.String("tx", tx.Describe(a.ledger)))
			return printJSON(c.OutOrStdout(), tx.Object(a.ledger))
		},
	}
	c.Flags().Int32Var(&height, "height", 0, "height of the block that includes the transaction")
	c.Flags().StringVar(&phase, "phase", rewardtx.Provisional.String(),
		"execution phase: provisional (0) or final (-1)")
	return c
}

func accountObject(account types.Account) rewardtx.Object {
	return rewardtx.Object{
		{Key: "keyid", Value: account.KeyID.String()},
		{Key: "addr", Value: account.KeyID.Address()},
		{Key: "regid", Value: account.RegID.String()},
		{Key: "owner", Value: account.Owner.String()},
		{Key: types.WICC.String(), Value: account.FreeBcoins},
		{Key: types.WUSD.String(), Value: account.FreeScoins},
		{Key: types.WGRT.String(), Value: account.FreeFcoins},
	}
}

func registerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <height-index> <pubkey>",
		Short: "register an account for the public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			regID, err := types.ParseRegID(args[0])
			if err != nil {
				return err
			}
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("%w: %w", types.ErrMalformedIdentity, err)
			}
			owner, err := types.PubKeyFromBytes(raw)
			if err != nil {
				return err
			}
			if err := a.openLedger(); err != nil {
				return err
			}
			account, err := a.ledger.Register(regID, owner)
			if err != nil {
				return err
			}
			return printJSON(c.OutOrStdout(), accountObject(account))
		},
	}
}

func accountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account <uid>",
		Short: "print account of the identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			uid, err := types.ParseUserID(args[0])
			if err != nil {
				return err
			}
			if err := a.openLedger(); err != nil {
				return err
			}
			account, err := a.ledger.GetAccount(uid)
			if err != nil {
				return err
			}
			return printJSON(c.OutOrStdout(), accountObject(account))
		},
	}
}

func involvedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "involved <hex>",
		Short: "print addresses involved in the transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tx, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			if err := a.openLedger(); err != nil {
				return err
			}
			involved, err := tx.InvolvedKeyIDs(a.ledger)
			if err != nil {
				return err
			}
			addresses := make([]string, 0, len(involved))
			for keyID := range involved {
				addresses = append(addresses, keyID.Address())
			}
			slices.Sort(addresses)
			return printJSON(c.OutOrStdout(), addresses)
		},
	}
}
