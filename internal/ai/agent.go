package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/metrics"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RunAgent answers an admin question about the club, letting the model pull
// live data through function-calling tools.
func RunAgent(userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")

	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the assistant of "The Badgers" gym admin panel.

	RULES:
	1. INVENTORY: For any question about product PRICE, COST or STOCK, call 'check_inventory' and read the JSON to answer. Do NOT say you cannot get it.
	2. PAYMENTS: For questions about who has not paid the monthly fee, call 'check_pending_payments'.
	3. FINANCE: For income, expenses or balance of a month, call 'get_finance_report'.
	4. Answer in the same language the user wrote in.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full product list with ID, Name, Cost, Sale price and Stock.",
				},
				{
					Name:        "check_pending_payments",
					Description: "List the active members that have not paid the monthly fee for a given month.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"month": {Type: genai.TypeInteger, Description: "Month number 1-12"},
							"year":  {Type: genai.TypeInteger, Description: "Four digit year"},
						},
						Required: []string{"month", "year"},
					},
				},
				{
					Name:        "get_finance_report",
					Description: "Get income (fees + sales), expenses and balance for a month.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"month": {Type: genai.TypeInteger, Description: "Month number 1-12"},
							"year":  {Type: genai.TypeInteger, Description: "Four digit year"},
						},
						Required: []string{"month", "year"},
					},
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			switch funcCall.Name {
			case "check_inventory":
				return executeCheckInventory(ctx, session), nil
			case "check_pending_payments":
				return executePendingPayments(ctx, session, funcCall), nil
			case "get_finance_report":
				return executeFinanceReport(ctx, session, funcCall), nil
			}
		}
	}

	return printResponse(resp), nil
}

func executeCheckInventory(ctx context.Context, session *genai.ChatSession) string {
	var productos []models.Producto
	database.DB.Find(&productos)

	type simpleProducto struct {
		ID     uint   `json:"id"`
		Nombre string `json:"nombre"`
		Costo  string `json:"costo"`
		Precio string `json:"precio"`
		Stock  int    `json:"stock"`
	}
	var lista []simpleProducto
	for _, p := range productos {
		lista = append(lista, simpleProducto{
			ID:     p.ID,
			Nombre: p.Nombre,
			Costo:  p.PrecioCosto.StringFixed(2),
			Precio: p.PrecioVenta.StringFixed(2),
			Stock:  p.Stock,
		})
	}

	jsonBytes, _ := json.Marshal(lista)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "check_inventory",
		Response: map[string]interface{}{"inventory": string(jsonBytes)},
	})
	if err != nil {
		return "Error reading inventory."
	}
	return printResponse(finalResp)
}

func executePendingPayments(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	mes := int(args["month"].(float64))
	anio := int(args["year"].(float64))

	var socios []models.Socio
	var pagos []models.Pago
	database.DB.Find(&socios)
	database.DB.Where("mes = ? AND anio = ?", mes, anio).Find(&pagos)

	exentos := metrics.ExentosSet(strings.Split(os.Getenv("EXEMPT_SOCIOS"), ","))
	clasif := metrics.ClasificarSocios(socios, exentos)
	estado := metrics.ReconciliarPagos(clasif.Activos, pagos, mes, anio)

	var nombres []string
	for _, s := range estado.SociosPendientes {
		nombres = append(nombres, s.Nombre)
	}

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "check_pending_payments",
		Response: map[string]interface{}{
			"paid_count": estado.Pagados,
			"pending":    strings.Join(nombres, ", "),
		},
	})
	if err != nil {
		return "Error checking payments."
	}
	return printResponse(finalResp)
}

func executeFinanceReport(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	mes := int(args["month"].(float64))
	anio := int(args["year"].(float64))

	resumen, err := database.GetResumenFinanciero(mes, anio)
	if err != nil {
		return "Error computing the finance report."
	}

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_finance_report",
		Response: map[string]interface{}{
			"fee_income":   resumen.IngresoCuotas.StringFixed(2),
			"sales_income": resumen.IngresoVentas.StringFixed(2),
			"expenses":     resumen.Egresos.StringFixed(2),
			"balance":      resumen.Balance.StringFixed(2),
		},
	})
	if err != nil {
		return "Error computing the finance report."
	}
	return printResponse(finalResp)
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
