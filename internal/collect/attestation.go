package collect

import (
	"context"
)

// VendorPatchPolicyCollector reports the vendor patching attestation,
// section 12. No live query exists for this control; the text comes from
// configuration.
type VendorPatchPolicyCollector struct{}

func (c *VendorPatchPolicyCollector) Index() int    { return 12 }
func (c *VendorPatchPolicyCollector) Title() string { return "Vendor patch policy" }

func (c *VendorPatchPolicyCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	return deps.Config.Attestations.VendorPatching, nil
}

// AntivirusCollector reports the anti-virus attestation, section 13.
type AntivirusCollector struct{}

func (c *AntivirusCollector) Index() int    { return 13 }
func (c *AntivirusCollector) Title() string { return "Antivirus" }

func (c *AntivirusCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	return deps.Config.Attestations.Antivirus, nil
}
