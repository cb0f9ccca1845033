package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"promospedia/internal/domains/brand"
	"promospedia/internal/domains/item"
	"promospedia/internal/domains/promotion"
)

// CatalogExporter builds an xlsx workbook with one sheet per entity.
// Collectors use it to get the whole catalog in a spreadsheet for offline
// checklist tracking.
type CatalogExporter struct {
	brands     brand.Service
	promotions promotion.Service
	items      item.Service
}

func NewCatalogExporter(brands brand.Service, promotions promotion.Service, items item.Service) *CatalogExporter {
	return &CatalogExporter{
		brands:     brands,
		promotions: promotions,
		items:      items,
	}
}

func (e *CatalogExporter) BuildWorkbook(ctx context.Context) (*excelize.File, error) {
	brands, err := e.brands.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	promotions, err := e.promotions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	// Brand names resolve promotion rows; promotion names resolve items.
	brandNames := make(map[string]string, len(brands))
	for _, b := range brands {
		brandNames[b.ID.String()] = b.Name
	}
	promotionNames := make(map[string]string, len(promotions))
	for _, p := range promotions {
		promotionNames[p.ID.String()] = p.Name
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Brands")

	if err := e.writeBrandSheet(f, brands); err != nil {
		return nil, err
	}
	if err := e.writePromotionSheet(f, promotions, brandNames); err != nil {
		return nil, err
	}
	if err := e.writeItemSheet(ctx, f, promotionNames); err != nil {
		return nil, err
	}

	return f, nil
}

func (e *CatalogExporter) writeBrandSheet(f *excelize.File, brands []brand.Brand) error {
	const sheet = "Brands"
	writeHeader(f, sheet, []string{"ID", "Name", "Slug", "Description", "Primary Color", "Founded", "Created At"})

	for i, b := range brands {
		row := i + 2
		setCell(f, sheet, 1, row, b.ID.String())
		setCell(f, sheet, 2, row, b.Name)
		setCell(f, sheet, 3, row, b.Slug)
		setCell(f, sheet, 4, row, b.Description)
		setCell(f, sheet, 5, row, b.PrimaryColor)
		if b.Founded != nil {
			setCell(f, sheet, 6, row, *b.Founded)
		}
		setCell(f, sheet, 7, row, b.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (e *CatalogExporter) writePromotionSheet(f *excelize.File, promotions []promotion.Promotion, brandNames map[string]string) error {
	const sheet = "Promotions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	writeHeader(f, sheet, []string{"ID", "Brand", "Name", "Slug", "Category", "Start Year", "End Year", "Created At"})

	for i, p := range promotions {
		row := i + 2
		setCell(f, sheet, 1, row, p.ID.String())
		setCell(f, sheet, 2, row, brandNames[p.BrandID.String()])
		setCell(f, sheet, 3, row, p.Name)
		setCell(f, sheet, 4, row, p.Slug)
		setCell(f, sheet, 5, row, p.Category)
		setCell(f, sheet, 6, row, p.StartYear)
		if p.EndYear != nil {
			setCell(f, sheet, 7, row, *p.EndYear)
		}
		setCell(f, sheet, 8, row, p.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (e *CatalogExporter) writeItemSheet(ctx context.Context, f *excelize.File, promotionNames map[string]string) error {
	const sheet = "Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	writeHeader(f, sheet, []string{"ID", "Promotion", "Name", "Rarity", "Item Number", "Metadata"})

	items, err := e.items.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	for idx, i := range items {
		row := idx + 2
		setCell(f, sheet, 1, row, i.ID.String())
		setCell(f, sheet, 2, row, promotionNames[i.PromotionID.String()])
		setCell(f, sheet, 3, row, i.Name)
		if i.Rarity != nil {
			setCell(f, sheet, 4, row, *i.Rarity)
		}
		if i.ItemNumber != nil {
			setCell(f, sheet, 5, row, *i.ItemNumber)
		}
		setCell(f, sheet, 6, row, formatMetadata(i.Metadata))
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, value)
}

func formatMetadata(metadata map[string]interface{}) string {
	if len(metadata) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(metadata))
	for k, v := range metadata {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, "; ")
}
