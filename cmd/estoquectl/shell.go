package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/pkg/client"
)

// state estados de la sesión de terminal.
type state int

const (
	stateLogin state = iota
	stateChangePassword
	stateMain
	stateDone
)

type command struct {
	help      string
	adminOnly bool
	run       func(ctx context.Context, args []string) error
}

type shell struct {
	c        *client.Client
	in       *bufio.Scanner
	out      io.Writer
	username string
	user     *dto.UserResponse
	state    state
}

func (s *shell) run(ctx context.Context) error {
	s.state = stateLogin
	for s.state != stateDone {
		if ctx.Err() != nil {
			return nil
		}
		var err error
		switch s.state {
		case stateLogin:
			err = s.login(ctx)
		case stateChangePassword:
			err = s.forcePasswordChange(ctx)
		case stateMain:
			err = s.prompt(ctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *shell) readLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *shell) login(ctx context.Context) error {
	username := s.username
	if username == "" {
		var err error
		if username, err = s.readLine("usuario: "); err != nil {
			return err
		}
	}
	password, err := s.readLine("contraseña: ")
	if err != nil {
		return err
	}
	res, err := s.c.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(s.out, "login fallido:", err)
		s.username = ""
		return nil
	}
	s.user = &res.User
	fmt.Fprintf(s.out, "bienvenido, %s (%s)\n", res.User.Name, res.User.Role)
	if res.IsFirstLogin {
		s.state = stateChangePassword
	} else {
		s.state = stateMain
	}
	return nil
}

func (s *shell) forcePasswordChange(ctx context.Context) error {
	fmt.Fprintln(s.out, "primer acceso: debe definir una nueva contraseña")
	pw, err := s.readLine("nueva contraseña: ")
	if err != nil {
		return err
	}
	confirm, err := s.readLine("confirmar: ")
	if err != nil {
		return err
	}
	u, err := s.c.ChangePassword(ctx, pw, confirm)
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return nil
	}
	s.user = u
	s.state = stateMain
	return nil
}

func (s *shell) isAdmin() bool {
	return s.user != nil && s.user.Role == entity.RoleAdministrador
}

func (s *shell) commands() map[string]command {
	return map[string]command{
		"dashboard":     {help: "contadores y actividad reciente", run: s.cmdDashboard},
		"productos":     {help: "productos [texto] [categoria]", run: s.cmdProducts},
		"producto-alta": {help: "producto-alta <codigo> <bases> <unid/base> <alta_rotacao|baixa_rotacao> <descripcion...>", adminOnly: true, run: s.cmdCreateProduct},
		"picos":         {help: "picos [texto] [categoria]", run: s.cmdPicos},
		"pico-alta":     {help: "pico-alta <producto> <bases> <sueltas> <torre>", run: s.cmdCreatePico},
		"pico-baja":     {help: "pico-baja <id>", run: s.cmdDeletePico},
		"stock":         {help: "stock [texto] [categoria]", run: s.cmdStock},
		"stock-alta":    {help: "stock-alta <producto> <cantidad>", run: s.cmdAddStock},
		"stock-baja":    {help: "stock-baja <id>", run: s.cmdDeleteStock},
		"usuarios":      {help: "lista de usuarios", adminOnly: true, run: s.cmdUsers},
		"reporte":       {help: "reporte <archivo.pdf> [pico|paletizado]", run: s.cmdReport},
		"salir":         {help: "cerrar sesión", run: s.cmdLogout},
	}
}

func (s *shell) prompt(ctx context.Context) error {
	line, err := s.readLine("> ")
	if err != nil {
		return err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmds := s.commands()
	cmd, ok := cmds[fields[0]]
	if !ok || (cmd.adminOnly && !s.isAdmin()) {
		s.help(cmds)
		return nil
	}
	if err := cmd.run(ctx, fields[1:]); err != nil {
		if client.IsStatus(err, http.StatusUnauthorized) {
			fmt.Fprintln(s.out, "sesión expirada")
			s.state = stateLogin
			return nil
		}
		fmt.Fprintln(s.out, "error:", err)
	}
	return nil
}

func (s *shell) help(cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for name, cmd := range cmds {
		if cmd.adminOnly && !s.isAdmin() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(s.out, "  %-14s %s\n", n, cmds[n].help)
	}
}

func (s *shell) table(header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func filterArgs(args []string) (query, category string) {
	for _, a := range args {
		if a == entity.CategoryAltaRotacao || a == entity.CategoryBaixaRotacao {
			category = a
		} else {
			query = a
		}
	}
	return query, category
}

func atoi(args []string, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("falta %s", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s debe ser un número", name)
	}
	return n, nil
}

var errUsage = errors.New("argumentos incorrectos")
