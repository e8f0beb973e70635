package seed

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/mock_ecom/internal/models"
	"github.com/Skotchmaster/mock_ecom/internal/repo"
)

var MockProducts = []models.Product{
	{Name: "Laptop", Price: 999.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Laptop"},
	{Name: "Smartphone", Price: 699.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Smartphone"},
	{Name: "Headphones", Price: 199.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Headphones"},
	{Name: "Tablet", Price: 499.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Tablet"},
	{Name: "Smartwatch", Price: 299.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Smartwatch"},
	{Name: "Keyboard", Price: 79.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Keyboard"},
	{Name: "Mouse", Price: 29.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Mouse"},
	{Name: "Monitor", Price: 249.99, Image: "https://placehold.co/200x180/4F46E5/ffffff?text=Monitor"},
	{Name: "Gaming Chair", Price: 349.50, Image: "https://placehold.co/200x180/10B981/ffffff?text=Gaming+Chair"},
	{Name: "External SSD", Price: 129.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=External+SSD"},
	{Name: "Web Camera 4K", Price: 89.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Web+Camera"},
	{Name: "Laser Printer", Price: 159.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Printer"},
	{Name: "Wi-Fi Router 6", Price: 189.95, Image: "https://placehold.co/200x180/10B981/ffffff?text=Router"},
	{Name: "E-Reader", Price: 130.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=E-Reader"},
	{Name: "Mini Drone", Price: 210.50, Image: "https://placehold.co/200x180/10B981/ffffff?text=Mini+Drone"},
	{Name: "Portable Projector", Price: 399.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Projector"},
	{Name: "Adjustable Desk Lamp", Price: 55.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Desk+Lamp"},
	{Name: "Wireless Charging Pad", Price: 35.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Wireless+Charger"},
	{Name: "Fitness Tracker Band", Price: 79.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Fitness+Tracker"},
	{Name: "Graphics Card RTX", Price: 599.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Graphics+Card"},
	{Name: "VR Headset Pro", Price: 799.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=VR+Headset"},
	{Name: "Bluetooth Speaker", Price: 95.50, Image: "https://placehold.co/200x180/10B981/ffffff?text=Bluetooth+Speaker"},
	{Name: "Drawing Tablet", Price: 115.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Drawing+Tablet"},
	{Name: "Portable Fan USB", Price: 25.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Portable+Fan"},
	{Name: "Smart Security Camera", Price: 65.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Security+Camera"},
	{Name: "Smart TV 55 Inch", Price: 899.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Smart+TV"},
	{Name: "USB Condenser", Price: 45.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Microphone"},
	{Name: "Smart Coffee Maker", Price: 149.99, Image: "https://placehold.co/200x180/10B981/ffffff?text=Coffee+Maker"},
	{Name: "Robot Vacuum Cleaner", Price: 275.50, Image: "https://placehold.co/200x180/10B981/ffffff?text=Robot+Vacuum"},
	{Name: "Action Camera 5K", Price: 320.00, Image: "https://placehold.co/200x180/10B981/ffffff?text=Action+Camera"},
	{Name: "Noise Earbuds", Price: 119.99, Image: "https://placehold.co/200x180/EF4444/ffffff?text=Earbuds"},
	{Name: "Mechanical Keyboard", Price: 109.95, Image: "https://placehold.co/200x180/EF4444/ffffff?text=Mech+Keyboard"},
}

// Run inserts MockProducts when the catalog is empty and reports how many rows it added.
func Run(ctx context.Context, r repo.CatalogRepo) (int, error) {
	n, err := r.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	products := make([]models.Product, len(MockProducts))
	copy(products, MockProducts)
	if err := r.CreateProducts(ctx, products); err != nil {
		return 0, fmt.Errorf("insert products: %w", err)
	}
	return len(products), nil
}
