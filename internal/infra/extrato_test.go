package infra_test

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
	"testing"

	"livrocaixa/internal/dto"
	"livrocaixa/internal/infra"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conteudoPDF inflates every FlateDecode stream in the document so the text
// operators can be inspected as the viewer will decode them.
func conteudoPDF(t *testing.T, pdf []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	resto := pdf
	for {
		i := bytes.Index(resto, []byte("stream\n"))
		if i < 0 {
			break
		}
		resto = resto[i+len("stream\n"):]
		fim := bytes.Index(resto, []byte("endstream"))
		if fim < 0 {
			break
		}
		dados := bytes.TrimSuffix(resto[:fim], []byte("\n"))
		resto = resto[fim:]

		r, err := zlib.NewReader(bytes.NewReader(dados))
		if err != nil {
			continue
		}
		inflado, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}
		out.Write(inflado)
	}
	require.NotZero(t, out.Len(), "nenhum stream FlateDecode encontrado")
	return out.Bytes()
}

func linhaExtrato(descricao string) dto.LancamentoResponse {
	return dto.LancamentoResponse{
		ID:        "1",
		Data:      "2025-10-01",
		Descricao: descricao,
		Documento: "-",
		Entidade:  "-",
		Entrada:   decimal.NewFromInt(100),
		Saida:     decimal.Zero,
		Saldo:     decimal.NewFromInt(100),
	}
}

func TestGerarExtratoPDFAcentosEmCP1252(t *testing.T) {
	pdf, err := infra.GerarExtratoPDF("Papelaria São João", []dto.LancamentoResponse{
		linhaExtrato("Aquisição de material"),
	})
	require.NoError(t, err)

	conteudo := conteudoPDF(t, pdf)

	// Core Helvetica is CP1252, so "Descrição" must land as \xE7\xE3 in the
	// text operators, never as the raw UTF-8 pair \xC3\xA7.
	assert.True(t, bytes.Contains(conteudo, []byte("Descri\xe7\xe3o")))
	assert.False(t, bytes.Contains(conteudo, []byte("Descri\xc3\xa7")))
	assert.True(t, bytes.Contains(conteudo, []byte("Sa\xedda")))
	assert.True(t, bytes.Contains(conteudo, []byte("S\xe3o Jo\xe3o")))
	assert.True(t, bytes.Contains(conteudo, []byte("Aquisi\xe7\xe3o")))
}

func TestGerarExtratoPDFTruncaPorRuna(t *testing.T) {
	// 46 ASCII chars followed by accented text: the cut falls on "ç" and must
	// keep the rune whole instead of splitting its bytes.
	longa := strings.Repeat("x", 46) + "ção final"
	pdf, err := infra.GerarExtratoPDF("Caixa", []dto.LancamentoResponse{linhaExtrato(longa)})
	require.NoError(t, err)

	conteudo := conteudoPDF(t, pdf)

	// 47 runes survive ("x"*46 + "ç") plus the ellipsis, all in CP1252.
	esperado := append(bytes.Repeat([]byte{'x'}, 46), 0xE7, 0x85)
	assert.True(t, bytes.Contains(conteudo, esperado))
	// No dangling lead byte from a split rune.
	assert.False(t, bytes.Contains(conteudo, append(bytes.Repeat([]byte{'x'}, 46), 0xC3)))
}

func TestGerarExtratoPDFVazio(t *testing.T) {
	pdf, err := infra.GerarExtratoPDF("Banco", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
