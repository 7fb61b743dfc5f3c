package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/client"
)

func (s *shell) cmdDashboard(ctx context.Context, _ []string) error {
	st, err := s.c.DashboardStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "picos: %d  paletizados: %d  alta rotação: %d  baixa rotação: %d\n",
		st.TotalPicos, st.TotalPaletizados, st.AltaRotacao, st.BaixaRotacao)
	printActivity := func(title string, logs []dto.ActivityLogResponse) {
		fmt.Fprintln(s.out, title)
		s.table("FECHA\tPRODUCTO\tTIPO\tCANT", func(w io.Writer) {
			for _, l := range logs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", l.CreatedAt.Format("02/01 15:04"), l.ProductCode, l.ItemType, l.Quantity)
			}
		})
	}
	printActivity("entradas recientes", st.RecentEntries)
	printActivity("salidas recientes", st.RecentExits)
	return nil
}

func (s *shell) cmdProducts(ctx context.Context, args []string) error {
	list, err := s.c.ListProducts(ctx)
	if err != nil {
		return err
	}
	q, cat := filterArgs(args)
	s.table("CÓDIGO\tDESCRIPCIÓN\tBASES\tUNID/BASE\tCATEGORÍA", func(w io.Writer) {
		for _, p := range client.FilterProducts(list, q, cat) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", p.Code, p.Description, p.QuantityBases, p.UnitsPerBase, p.Category)
		}
	})
	return nil
}

func (s *shell) cmdCreateProduct(ctx context.Context, args []string) error {
	if len(args) < 5 {
		return errUsage
	}
	bases, err := atoi(args, 1, "bases")
	if err != nil {
		return err
	}
	upb, err := atoi(args, 2, "unid/base")
	if err != nil {
		return err
	}
	p, err := s.c.CreateProduct(ctx, dto.CreateProductRequest{
		Code:          args[0],
		QuantityBases: bases,
		UnitsPerBase:  upb,
		Category:      args[3],
		Description:   strings.Join(args[4:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "producto creado:", p.Code)
	return nil
}

func (s *shell) cmdPicos(ctx context.Context, args []string) error {
	list, err := s.c.ListPicos(ctx)
	if err != nil {
		return err
	}
	q, cat := filterArgs(args)
	s.table("ID\tPRODUCTO\tBASES\tSUELTAS\tTOTAL\tTORRE", func(w io.Writer) {
		for _, p := range client.FilterPicos(list, q, cat) {
			code := ""
			if p.Product != nil {
				code = p.Product.Code
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", p.ID, code, p.Bases, p.LooseUnits, p.TotalUnits, p.TowerLocation)
		}
	})
	return nil
}

func (s *shell) cmdCreatePico(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	product, err := s.c.ResolveProduct(ctx, args[0])
	if err != nil {
		return err
	}
	bases, err := atoi(args, 1, "bases")
	if err != nil {
		return err
	}
	loose, err := atoi(args, 2, "sueltas")
	if err != nil {
		return err
	}
	p, err := s.c.CreatePico(ctx, dto.CreatePicoRequest{
		ProductCode: product.Code, Bases: bases, LooseUnits: loose, TowerLocation: args[3],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "pico registrado: %s (%d unidades)\n", p.ID, p.TotalUnits)
	return nil
}

func (s *shell) cmdDeletePico(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return s.c.DeletePico(ctx, args[0])
}

func (s *shell) cmdStock(ctx context.Context, args []string) error {
	list, err := s.c.ListStock(ctx)
	if err != nil {
		return err
	}
	q, cat := filterArgs(args)
	s.table("ID\tPRODUCTO\tPALLETS", func(w io.Writer) {
		for _, st := range client.FilterStock(list, q, cat) {
			code := ""
			if st.Product != nil {
				code = st.Product.Code
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n", st.ID, code, st.Quantity)
		}
	})
	return nil
}

func (s *shell) cmdAddStock(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	product, err := s.c.ResolveProduct(ctx, args[0])
	if err != nil {
		return err
	}
	qty, err := atoi(args, 1, "cantidad")
	if err != nil {
		return err
	}
	st, err := s.c.AddStock(ctx, product.Code, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "stock de %s: %d pallets\n", product.Code, st.Quantity)
	return nil
}

func (s *shell) cmdDeleteStock(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return s.c.DeleteStock(ctx, args[0])
}

func (s *shell) cmdUsers(ctx context.Context, _ []string) error {
	list, err := s.c.ListUsers(ctx)
	if err != nil {
		return err
	}
	s.table("USUARIO\tNOMBRE\tROL\tPRIMER ACCESO", func(w io.Writer) {
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", u.Username, u.Name, u.Role, u.IsFirstLogin)
		}
	})
	return nil
}

func (s *shell) cmdReport(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	itemType := ""
	if len(args) == 2 {
		itemType = args[1]
	}
	pdf, err := s.c.StockReport(ctx, itemType)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], pdf, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "reporte guardado en %s (%d bytes)\n", args[0], len(pdf))
	return nil
}

func (s *shell) cmdLogout(ctx context.Context, _ []string) error {
	err := s.c.Logout(ctx)
	s.user = nil
	s.state = stateDone
	return err
}
