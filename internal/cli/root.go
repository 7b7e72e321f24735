// Package cli implementa peoplectl, cliente de línea de comandos del servicio de usuarios.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"urban-people/internal/domain/users"
)

const defaultURL = "http://localhost:8080"

type options struct {
	url  string
	json bool
	out  io.Writer
}

// NewRootCommand arma peoplectl con todos sus subcomandos.
func NewRootCommand(out io.Writer) *cobra.Command {
	if out == nil {
		out = os.Stdout
	}
	opts := &options{out: out}

	root := &cobra.Command{
		Use:           "peoplectl",
		Short:         "peoplectl habla con el servicio de usuarios de UrbanPeople",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	defURL := defaultURL
	if v := os.Getenv("PEOPLE_URL"); v != "" {
		defURL = v
	}
	root.PersistentFlags().StringVar(&opts.url, "url", defURL, "URL base del servicio de usuarios (env PEOPLE_URL)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Imprime los resultados como JSON")

	root.AddCommand(
		newListCmd(opts),
		newPetsCmd(opts),
		newKindsCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return root
}

// Execute corre peoplectl; lo llama main.
func Execute() {
	if err := NewRootCommand(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) client() (*Client, error) {
	return NewClient(o.url)
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista todos los usuarios en orden de inserción",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			all, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return opts.printJSON(all)
			}
			opts.printUsers(all)
			return nil
		},
	}
}

func newPetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pets",
		Short: "Lista la mascota de cada usuario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			pets, err := c.Pets(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return opts.printJSON(pets)
			}
			tw := tabwriter.NewWriter(opts.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tNAME")
			for _, p := range pets {
				fmt.Fprintf(tw, "%s\t%s\n", p.Type, p.Name)
			}
			return tw.Flush()
		},
	}
}

func newKindsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Lista los tipos de animal permitidos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			kinds, err := c.Kinds(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return opts.printJSON(kinds)
			}
			fmt.Fprintln(opts.out, strings.Join(kinds, "\n"))
			return nil
		},
	}
}

type userFlags struct {
	name    string
	rating  int
	luck    int
	petType string
	petName string
}

func (f *userFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Nombre del usuario (clave de búsqueda)")
	cmd.Flags().IntVar(&f.rating, "rating", 0, "Rating del usuario")
	cmd.Flags().IntVar(&f.luck, "luck", 1, "Suerte del usuario (1-10)")
	cmd.Flags().StringVar(&f.petType, "pet-type", string(users.KindCat), "Tipo de mascota")
	cmd.Flags().StringVar(&f.petName, "pet-name", "", "Nombre de la mascota")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pet-name")
}

func (f *userFlags) user() users.User {
	return users.User{
		Name:   f.name,
		Rating: f.rating,
		Luck:   f.luck,
		Pet:    users.Pet{Type: f.petType, Name: f.petName},
	}
}

func newCreateCmd(opts *options) *cobra.Command {
	var f userFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Agrega un usuario al final",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			u, err := c.Create(cmd.Context(), f.user())
			if err != nil {
				return err
			}
			if opts.json {
				return opts.printJSON(u)
			}
			fmt.Fprintf(opts.out, "Created: %s\n", u.Name)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newUpdateCmd(opts *options) *cobra.Command {
	var f userFlags
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Reemplaza el primer usuario con ese nombre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			msg, err := c.Update(cmd.Context(), args[0], f.user())
			if err != nil {
				return err
			}
			if opts.json {
				return opts.printJSON(msg)
			}
			fmt.Fprintln(opts.out, msg)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Elimina el primer usuario con ese nombre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			u, err := c.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.json {
				return opts.printJSON(u)
			}
			fmt.Fprintf(opts.out, "Deleted: %s\n", u.Name)
			return nil
		},
	}
}

func (o *options) printJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (o *options) printUsers(all []users.User) {
	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRATING\tLUCK\tPET TYPE\tPET NAME")
	for _, u := range all {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", u.Name, u.Rating, u.Luck, u.Pet.Type, u.Pet.Name)
	}
	_ = tw.Flush()
}
