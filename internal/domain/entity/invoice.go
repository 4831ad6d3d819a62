package entity

// Estados del ciclo de vida financiero de una factura.
// El estado es un campo derivado: se recalcula en cada mutación del ledger
// (y en cada guardado una vez que la factura salió de draft), nunca lo fija
// la capa de presentación.
const (
	StatusDraft         = "draft"          // valor inicial; se abandona de forma permanente al tocar el ledger
	StatusPending       = "pending"        // sin pagos registrados
	StatusPartiallyPaid = "partially_paid" // pagos > 0 pero menores al total facturado
	StatusPaid          = "paid"           // pagos cubren el total facturado (puede haber sobrepago)
)

// DefaultTerms términos y condiciones por defecto de una factura nueva.
const DefaultTerms = "1. All payments shall be made in Nigerian Naira (₦).\n" +
	"2. A first deposit has been recorded to initiate this invoice.\n" +
	"3. The final balance is due immediately after the website demo is presented and prior to final deployment.\n" +
	"4. Project delivery/deployment will commence only after the full balance has been cleared."

// ClientDetails datos del cliente para la cabecera de la factura.
// Sin validación más allá de la presencia para mostrar.
type ClientDetails struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BusinessName string `json:"businessName"`
}

// Invoice agregado raíz: ítems, cliente, ledger de pagos y estado derivado.
//
// Invariantes:
//   - Payments contiene a lo sumo un registro de depósito, siempre en la posición 0.
//   - Status es consistente con sum(items) vs sum(payments) tras cada mutación.
//   - Balance puede ser negativo si hay sobrepago; nunca se recorta a cero.
//
// Los tags JSON replican el payload que persiste la colección en el almacén
// clave-valor (camelCase), de modo que los datos guardados por versiones
// anteriores del cliente siguen siendo legibles.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssueDate     string          `json:"issueDate"` // YYYY-MM-DD
	DueDate       string          `json:"dueDate"`   // YYYY-MM-DD
	Client        ClientDetails   `json:"client"`
	Items         []InvoiceItem   `json:"items"`
	Payments      []PaymentRecord `json:"payments"`
	Terms         string          `json:"terms"`
	Status        string          `json:"status"`
	Logo          string          `json:"logo,omitempty"`
}

// Clone devuelve una copia profunda del agregado (slices propios).
func (inv *Invoice) Clone() *Invoice {
	out := *inv
	out.Items = append([]InvoiceItem(nil), inv.Items...)
	out.Payments = append([]PaymentRecord(nil), inv.Payments...)
	return &out
}

// UserProfile identidad estática del freelancer; solo se consume para presentación.
type UserProfile struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Logo         string `json:"logo,omitempty"`
	Website      string `json:"website,omitempty"`
}
