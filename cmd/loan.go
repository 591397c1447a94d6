package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLoanPerson  string
	flagLoanDate    string
	flagLoanDue     string
	flagLoanReason  string
	flagPayDate     string
	flagPayNote     string
	flagPayEditID   string
	flagListSettled bool

	flagLoanEditPerson string
	flagLoanEditAmount string
	flagLoanEditDate   string
	flagLoanEditDue    string
	flagLoanEditReason string
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Track money borrowed and lent",
}

var loanAddCmd = &cobra.Command{
	Use:   "add (taken|given) AMOUNT",
	Short: "Record a new loan",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoanAdd,
}

var loanEditCmd = &cobra.Command{
	Use:   "edit LOAN_ID",
	Short: "Edit a loan's details",
	Long:  "Edit a loan in place by id (or unambiguous id prefix).\nOnly the fields passed as flags change; payments are managed with pay/unpay.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoanEdit,
}

var loanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loans with outstanding balances",
	RunE:  runLoanList,
}

var loanPayCmd = &cobra.Command{
	Use:   "pay LOAN_ID AMOUNT",
	Short: "Record a payment against a loan",
	Long:  "Record a payment (or edit one with --payment). A payment larger than\nthe remaining balance is capped to it; paying the loan off marks it settled.",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoanPay,
}

var loanUnpayCmd = &cobra.Command{
	Use:   "unpay LOAN_ID PAYMENT_ID",
	Short: "Delete a recorded payment",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoanUnpay,
}

var loanSettleCmd = &cobra.Command{
	Use:   "settle LOAN_ID",
	Short: "Mark a loan settled regardless of what was paid",
	Long:  "Force-settle a loan. Any unpaid remainder is written off: it stops\ncounting toward the balance but the payment history stays untouched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoanSettle,
}

func init() {
	loanAddCmd.Flags().StringVarP(&flagLoanPerson, "person", "p", "", "Counterparty name (required)")
	loanAddCmd.Flags().StringVar(&flagLoanDate, "date", "", "Origination date YYYY-MM-DD (default today)")
	loanAddCmd.Flags().StringVar(&flagLoanDue, "due", "", "Due date YYYY-MM-DD")
	loanAddCmd.Flags().StringVar(&flagLoanReason, "reason", "", "What the loan was for")

	loanPayCmd.Flags().StringVar(&flagPayDate, "date", "", "Payment date YYYY-MM-DD (default today)")
	loanPayCmd.Flags().StringVar(&flagPayNote, "note", "", "Payment note")
	loanPayCmd.Flags().StringVar(&flagPayEditID, "payment", "", "Existing payment id to edit instead of appending")

	loanEditCmd.Flags().StringVarP(&flagLoanEditPerson, "person", "p", "", "New counterparty name")
	loanEditCmd.Flags().StringVar(&flagLoanEditAmount, "amount", "", "New principal amount")
	loanEditCmd.Flags().StringVar(&flagLoanEditDate, "date", "", "New origination date YYYY-MM-DD")
	loanEditCmd.Flags().StringVar(&flagLoanEditDue, "due", "", "New due date YYYY-MM-DD (empty clears it)")
	loanEditCmd.Flags().StringVar(&flagLoanEditReason, "reason", "", "New reason")

	loanListCmd.Flags().BoolVar(&flagListSettled, "settled", false, "Show settled loans instead of pending ones")

	loanCmd.AddCommand(loanAddCmd, loanEditCmd, loanListCmd, loanPayCmd, loanUnpayCmd, loanSettleCmd)
	rootCmd.AddCommand(loanCmd)
}

func runLoanAdd(_ *cobra.Command, args []string) error {
	var typ model.LoanType
	switch args[0] {
	case "taken":
		typ = model.LoanTaken
	case "given":
		typ = model.LoanGiven
	default:
		return fmt.Errorf("loan type must be taken or given, got %q", args[0])
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if flagLoanPerson == "" {
		return errors.New("a counterparty is required, pass --person")
	}
	date, err := checkDate(flagLoanDate)
	if err != nil {
		return err
	}
	due := flagLoanDue
	if due != "" {
		if due, err = checkDate(due); err != nil {
			return err
		}
	}

	l := model.Loan{
		ID:       model.NewID(),
		Type:     typ,
		Person:   flagLoanPerson,
		Amount:   amount,
		Date:     date,
		DueDate:  due,
		Reason:   flagLoanReason,
		Status:   model.StatusPending,
		Payments: []model.LoanPayment{},
	}

	return mutate(func(snap *model.Snapshot) error {
		snap.Khata.Loans = append([]model.Loan{l}, snap.Khata.Loans...)
		fmt.Printf("  Recorded loan %s of %s %s %s\n",
			shortID(l.ID), cli.FormatAmount(amount), map[model.LoanType]string{
				model.LoanTaken: "taken from",
				model.LoanGiven: "given to",
			}[typ], flagLoanPerson)
		return nil
	})
}

func runLoanEdit(cmd *cobra.Command, args []string) error {
	return mutate(func(snap *model.Snapshot) error {
		idx, ok := findLoan(snap.Khata, args[0])
		if !ok {
			return fmt.Errorf("no loan matches %q", args[0])
		}
		l := &snap.Khata.Loans[idx]

		if cmd.Flags().Changed("person") {
			if flagLoanEditPerson == "" {
				return errors.New("a counterparty is required")
			}
			l.Person = flagLoanEditPerson
		}
		if cmd.Flags().Changed("amount") {
			amount, err := parseAmount(flagLoanEditAmount)
			if err != nil {
				return err
			}
			l.Amount = amount
			// Principal changed: the paid-vs-amount relation may have flipped.
			*l = loan.Recompute(*l)
		}
		if cmd.Flags().Changed("date") {
			date, err := checkDate(flagLoanEditDate)
			if err != nil {
				return err
			}
			l.Date = date
		}
		if cmd.Flags().Changed("due") {
			due := flagLoanEditDue
			if due != "" {
				var err error
				if due, err = checkDate(due); err != nil {
					return err
				}
			}
			l.DueDate = due
		}
		if cmd.Flags().Changed("reason") {
			l.Reason = flagLoanEditReason
		}

		fmt.Printf("  Updated loan %s\n", shortID(l.ID))
		return nil
	})
}

func runLoanList(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	var rows [][]string
	for _, l := range snap.Khata.Loans {
		settled := l.Status != model.StatusPending
		if settled != flagListSettled {
			continue
		}
		rows = append(rows, []string{
			shortID(l.ID),
			string(l.Type),
			cli.Truncate(l.Person, 20),
			cli.FormatAmount(l.Amount),
			cli.FormatAmount(loan.TotalPaid(l)),
			cli.FormatAmount(loan.Outstanding(l)),
			string(l.Status),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  No loans to show.")
		return nil
	}

	fmt.Print(cli.RenderTable(
		[]string{"ID", "Type", "Person", "Amount", "Paid", "Remaining", "Status"},
		rows,
	))
	return nil
}

func runLoanPay(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	date, err := checkDate(flagPayDate)
	if err != nil {
		return err
	}

	return mutate(func(snap *model.Snapshot) error {
		idx, ok := findLoan(snap.Khata, args[0])
		if !ok {
			return fmt.Errorf("no loan matches %q", args[0])
		}
		l := snap.Khata.Loans[idx]

		// Advisory cap: never record more than what is still owed. The
		// engine itself tolerates overpayment, this is a UI courtesy only.
		remaining := l.Amount
		for _, p := range l.Payments {
			if p.ID == flagPayEditID {
				continue
			}
			remaining -= p.Amount
		}
		if remaining < 0 {
			remaining = 0
		}
		if amount > remaining {
			fmt.Printf("  Capping payment to the remaining %s\n", cli.FormatAmount(remaining))
			amount = remaining
		}

		payment := model.LoanPayment{Amount: amount, Date: date, Note: flagPayNote}
		updated := loan.ApplyPayment(l, payment, flagPayEditID, model.NewID)
		snap.Khata.Loans[idx] = updated

		fmt.Printf("  Paid %s on loan %s; remaining %s\n",
			cli.FormatAmount(amount), shortID(l.ID), cli.FormatAmount(loan.Outstanding(updated)))
		if updated.Status != model.StatusPending {
			fmt.Printf("  Loan is now %s\n", updated.Status)
		}
		return nil
	})
}

func runLoanUnpay(_ *cobra.Command, args []string) error {
	return mutate(func(snap *model.Snapshot) error {
		idx, ok := findLoan(snap.Khata, args[0])
		if !ok {
			return fmt.Errorf("no loan matches %q", args[0])
		}
		l := snap.Khata.Loans[idx]

		found := false
		paymentID := args[1]
		for _, p := range l.Payments {
			if p.ID == paymentID || strings.HasPrefix(p.ID, paymentID) {
				paymentID = p.ID
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no payment matches %q on loan %s", args[1], shortID(l.ID))
		}

		updated := loan.DeletePayment(l, paymentID)
		snap.Khata.Loans[idx] = updated
		fmt.Printf("  Removed payment; loan %s is %s with %s remaining\n",
			shortID(l.ID), updated.Status, cli.FormatAmount(loan.Outstanding(updated)))
		return nil
	})
}

func runLoanSettle(_ *cobra.Command, args []string) error {
	return mutate(func(snap *model.Snapshot) error {
		idx, ok := findLoan(snap.Khata, args[0])
		if !ok {
			return fmt.Errorf("no loan matches %q", args[0])
		}
		l := snap.Khata.Loans[idx]

		remainder := loan.Outstanding(l)
		updated := loan.Settle(l)
		snap.Khata.Loans[idx] = updated

		fmt.Printf("  Loan %s marked %s\n", shortID(l.ID), updated.Status)
		if remainder > 0 {
			fmt.Printf("  Written off: %s\n", cli.FormatAmount(remainder))
		}
		return nil
	})
}
