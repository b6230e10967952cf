package utils

import (
	"certhub/config"
	"certhub/database"
	courseModels "certhub/models/course"
	"certhub/pdfgen"
	"context"
	"fmt"
)

// LoadCertificateFonts builds a complete font cache from the font_assets
// table and the font bucket. Fails unless every required font resolves.
func LoadCertificateFonts(ctx context.Context) (*pdfgen.FontCache, error) {
	var assets []courseModels.FontAsset
	if err := database.Database.Db.Where("is_deleted = false").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to load font assets: %w", err)
	}

	objectKeys := make(map[string]string, len(assets))
	for _, a := range assets {
		objectKeys[a.FontKey] = a.ObjectKey
	}

	load := func(ctx context.Context, objectKey string) ([]byte, error) {
		return DownloadObject(ctx, config.AppConfig.FontBucket, objectKey)
	}
	return pdfgen.LoadFontCache(ctx, load, objectKeys)
}

// GenerateAndUploadCertificate renders the PDF for one issued certificate,
// uploads it to the certificate bucket and persists the public URL on the
// record. Safe to call again: a stored URL means nothing is left to do.
func GenerateAndUploadCertificate(ctx context.Context, cert *courseModels.Certificate, cache *pdfgen.FontCache) error {
	if cert.DocumentURL != "" {
		return nil
	}

	var crs courseModels.Course
	if err := database.Database.Db.Where("id = ?", cert.CourseID).First(&crs).Error; err != nil {
		return fmt.Errorf("course %d not found for certificate %d: %w", cert.CourseID, cert.ID, err)
	}

	template, err := pdfgen.FetchTemplate(config.AppConfig.CertTemplateURL)
	if err != nil {
		return err
	}

	doc, err := pdfgen.GenerateCertificate(template, pdfgen.CertificateData{
		StudentName: cert.StudentName,
		CourseName:  crs.Name,
		IssueDate:   cert.IssuedAt,
		ExpiryDate:  cert.ExpiresAt,
	}, cache)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("certificate_%d.pdf", cert.ID)
	if err := UploadObject(ctx, config.AppConfig.CertBucket, key, doc, "application/pdf"); err != nil {
		return err
	}

	cert.DocumentURL = PublicURL(config.AppConfig.CertBucket, key)
	if err := database.Database.Db.Save(cert).Error; err != nil {
		return fmt.Errorf("failed to persist document URL for certificate %d: %w", cert.ID, err)
	}
	return nil
}
