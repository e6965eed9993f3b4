package ports

import "github.com/jhoicas/storemax-web/internal/application/dto"

// DocumentRenderer genera los PDF descargables.
type DocumentRenderer interface {
	ManagerReportPDF(report *dto.ManagerDashboardDTO) ([]byte, error)
	ReceiptPDF(receipt *dto.ReceiptDTO) ([]byte, error)
}
