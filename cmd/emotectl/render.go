package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
	"emotebot/internal/ports/input"
)

type characterFlags struct {
	name   string
	world  string
	gender string
	npc    bool
}

func (f *characterFlags) register(cmd *cobra.Command, prefix, role string) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, prefix, "", role+" name")
	flags.StringVar(&f.world, prefix+"-world", "", role+" home world")
	flags.StringVar(&f.gender, prefix+"-gender", "male", role+" gender (male or female)")
	flags.BoolVar(&f.npc, prefix+"-npc", false, role+" is not a player")
}

func (f *characterFlags) character() (logmessage.Character, error) {
	gender, err := logmessage.ParseGender(f.gender)
	if err != nil {
		return logmessage.Character{}, fmt.Errorf("%w: %v", domain.ErrInvalidGender, err)
	}
	return logmessage.Character{
		Name:     f.name,
		World:    f.world,
		Gender:   gender,
		IsPlayer: !f.npc,
	}, nil
}

type renderOptions struct {
	origin     characterFlags
	target     characterFlags
	lang       string
	self       string
	worldNames bool
}

func (o *renderOptions) language() (entities.Language, error) {
	return entities.ParseLanguage(o.lang)
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <command>",
		Short: "Render one use of an emote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			origin, err := opts.origin.character()
			if err != nil {
				return err
			}
			req := input.RenderRequest{
				Command:    args[0],
				Language:   lang,
				Origin:     origin,
				WorldNames: opts.worldNames,
			}
			if opts.target.name != "" {
				target, err := opts.target.character()
				if err != nil {
					return err
				}
				req.Target = &target
			}
			switch opts.self {
			case "":
			case "origin":
				req.Origin.IsSelf = true
			case "target":
				if req.Target == nil {
					return errors.New("--self target needs --target")
				}
				req.Target.IsSelf = true
			default:
				return fmt.Errorf("--self must be origin or target, got %q", opts.self)
			}

			svc, err := root.service(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			text, err := svc.Render(cmd.Context(), req)
			if errors.Is(err, domain.ErrEmoteNotFound) {
				if suggestions, _ := svc.Suggest(cmd.Context(), args[0], 3); len(suggestions) > 0 {
					return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	opts.origin.register(cmd, "origin", "origin")
	opts.target.register(cmd, "target", "target")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "en", "log message language (en or ja)")
	cmd.Flags().StringVar(&opts.self, "self", "", "who reads the log: origin or target")
	cmd.Flags().BoolVar(&opts.worldNames, "world-names", false, "render player names as Name@World")
	_ = cmd.MarkFlagRequired("origin")
	return cmd
}

func newPerspectivesCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "perspectives <command>",
		Short: "Render an emote from every point of view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}
			origin, err := opts.origin.character()
			if err != nil {
				return err
			}
			target, err := opts.target.character()
			if err != nil {
				return err
			}
			svc, err := root.service(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			texts, err := svc.Perspectives(cmd.Context(), args[0], lang, origin, target)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "you:                 %s\n", texts.YouUntargeted)
			fmt.Fprintf(w, "you -> other:        %s\n", texts.YouTargetOther)
			fmt.Fprintf(w, "other -> you:        %s\n", texts.OtherTargetYou)
			fmt.Fprintf(w, "other -> other:      %s\n", texts.OtherTargetOther)
			fmt.Fprintf(w, "other:               %s\n", texts.OtherUntargeted)
			return nil
		},
	}
	opts.origin.register(cmd, "origin", "origin")
	opts.target.register(cmd, "target", "target")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "en", "log message language (en or ja)")
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
